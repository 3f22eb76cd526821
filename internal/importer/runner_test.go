package importer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"explorerLedger/internal/explorer"
	"explorerLedger/internal/model"
	"explorerLedger/internal/schema"
	"explorerLedger/internal/storage"
)

const txHeaderLine = `"Transaction Hash","Blockno","UnixTimestamp","DateTime (UTC)","From","To","ContractAddress","Value_IN(AVAX)","Value_OUT(AVAX)","CurrentValue @ $30.5/AVAX","TxnFee(AVAX)","TxnFee(USD)","Historical $Price/AVAX","Status","ErrCode","Method"`

const (
	hashA = "0x00000000000000000000000000000000000000000000000000000000000000aa"
	addrA = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	addrB = "0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"
	addrC = "0xcccccccccccccccccccccccccccccccccccccccc"
)

var txRows = []string{
	hashA + `,100,1609459200,2021-01-01 00:00:00,` + addrA + `,` + addrB + `,,5,0,152.5,0.01,0.3,30,,,Transfer`,
	hashA + `,101,1609459200,2021-01-01 00:00:00,` + addrC + `,` + addrB + `,,0,1.5,45.75,0.002,0.06,30,,,Transfer`,
	hashA + `,102,1609459200,2021-01-01 00:00:00,` + addrC + `,` + addrB + `,,0,3,91.5,0.002,0.06,30,1,Reverted,Swap`,
	hashA + `,103,1609459200,2021-01-01 00:00:00,` + addrA + `,` + addrB + `,,7,0,213.5,0.002,0.06,30,1,Reverted,`,
}

type memorySink struct {
	mu      sync.Mutex
	failFor int
	calls   int
	records []model.ImportRecord
}

func (m *memorySink) PutRecordBatch(_ context.Context, records []model.ImportRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.failFor > 0 {
		m.failFor--
		return errors.New("temporary failure")
	}
	m.records = append(m.records, records...)
	return nil
}

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "export.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	return path
}

func csvContent(header string, rows ...string) string {
	return header + "\n" + strings.Join(rows, "\n") + "\n"
}

func TestRunnerClassifiesFile(t *testing.T) {
	path := writeFile(t, csvContent(txHeaderLine, txRows...))
	sink := &memorySink{}

	runner := NewRunner(RunConfig{Input: path, ImportID: "run-1", BatchSize: 2}, nil, []storage.Storage{sink}, zap.NewNop())
	summary, err := runner.Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}

	want := Summary{
		ImportID:    "run-1",
		Schema:      "SnowTrace (AVAX Transactions)",
		Total:       4,
		Deposits:    1,
		Withdrawals: 1,
		Spends:      1,
		Skipped:     1,
	}
	if !reflect.DeepEqual(summary, want) {
		t.Fatalf("summary mismatch: %+v != %+v", summary, want)
	}

	if len(sink.records) != 3 || sink.calls != 2 {
		t.Fatalf("expected 3 records in 2 batches, got %d records in %d calls", len(sink.records), sink.calls)
	}

	lines := []int{sink.records[0].Line, sink.records[1].Line, sink.records[2].Line}
	if !reflect.DeepEqual(lines, []int{2, 3, 4}) {
		t.Fatalf("line mismatch: %v", lines)
	}

	spend := sink.records[2]
	if spend.Record.Type != model.TrSpend || spend.Record.Note != "Failure (Swap)" {
		t.Fatalf("unexpected spend: %+v", spend.Record)
	}
	if spend.File != "export.csv" || spend.Worksheet != "SnowTrace" || spend.ImportID != "run-1" {
		t.Fatalf("unexpected metadata: %+v", spend)
	}
	if !strings.EqualFold(spend.TxRaw.From, addrC) {
		t.Fatalf("from not normalized: %s", spend.TxRaw.From)
	}
	if spend.TxRaw.Position != (model.TxRawPosition{TxHash: 0, From: 4, To: 5}) {
		t.Fatalf("position mismatch: %+v", spend.TxRaw.Position)
	}
	if spend.TxRaw.TxHash != hashA {
		t.Fatalf("hash mismatch: %s", spend.TxRaw.TxHash)
	}
}

func TestRunnerParallelMatchesSequential(t *testing.T) {
	rows := make([]string, 0, 40)
	for i := 0; i < 10; i++ {
		rows = append(rows, txRows...)
	}
	path := writeFile(t, csvContent(txHeaderLine, rows...))

	sequential := &memorySink{}
	if _, err := NewRunner(RunConfig{Input: path, ImportID: "a"}, nil, []storage.Storage{sequential}, nil).Run(context.Background()); err != nil {
		t.Fatalf("sequential: %v", err)
	}
	parallel := &memorySink{}
	if _, err := NewRunner(RunConfig{Input: path, ImportID: "a", Workers: 8}, nil, []storage.Storage{parallel}, nil).Run(context.Background()); err != nil {
		t.Fatalf("parallel: %v", err)
	}
	if !reflect.DeepEqual(sequential.records, parallel.records) {
		t.Fatalf("parallel output differs from sequential output")
	}
}

func TestRunnerUnrecognizedHeader(t *testing.T) {
	path := writeFile(t, csvContent("Date,Amount,Currency", "2021-01-01,5,EUR"))
	sink := &memorySink{}

	_, err := NewRunner(RunConfig{Input: path}, nil, []storage.Storage{sink}, nil).Run(context.Background())
	if !errors.Is(err, schema.ErrUnrecognizedFormat) {
		t.Fatalf("expected ErrUnrecognizedFormat, got %v", err)
	}
	if sink.calls != 0 {
		t.Fatalf("sink should not be called")
	}
}

func TestRunnerInvalidNumberAbortsImport(t *testing.T) {
	bad := hashA + `,104,1609459200,2021-01-01 00:00:00,` + addrA + `,` + addrB + `,,abc,0,0,0.01,0.3,30,,,`
	path := writeFile(t, csvContent(txHeaderLine, txRows[0], bad, txRows[1]))
	sink := &memorySink{}

	_, err := NewRunner(RunConfig{Input: path}, nil, []storage.Storage{sink}, nil).Run(context.Background())
	if !errors.Is(err, explorer.ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
	var rowErr *RowError
	if !errors.As(err, &rowErr) || rowErr.Line != 3 {
		t.Fatalf("expected row error at line 3, got %v", err)
	}
	if sink.calls != 0 || len(sink.records) != 0 {
		t.Fatalf("no record should be written after a fatal row")
	}
}

func TestRunnerHandlesBOMAndInternalExport(t *testing.T) {
	header := "\ufeffTxhash,Blockno,UnixTimestamp,DateTime,ParentTxFrom,ParentTxTo,ParentTxETH_Value,From,TxTo,ContractAddress,Value_IN(AVAX),Value_OUT(AVAX),CurrentValue @ $30/AVAX,Historical $Price/AVAX,Status,ErrCode,Type,PrivateNote"
	rows := []string{
		hashA + `,1,1609459200,2021-01-01 00:00:00,` + addrA + `,` + addrB + `,0,` + addrB + `,` + addrA + `,,2,0,60,30,0,,call,`,
		hashA + `,2,1609459200,2021-01-01 00:00:00,` + addrA + `,` + addrB + `,0,` + addrB + `,` + addrA + `,,2,0,60,30,1,Reverted,call,`,
	}
	path := writeFile(t, csvContent(header, rows...))
	sink := &memorySink{}

	summary, err := NewRunner(RunConfig{Input: path}, nil, []storage.Storage{sink}, nil).Run(context.Background())
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Schema != "SnowTrace (AVAX Internal Transactions)" || summary.Deposits != 1 || summary.Skipped != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.ImportID == "" || sink.records[0].ImportID != summary.ImportID {
		t.Fatalf("import id not generated: %+v", summary)
	}
	rec := sink.records[0].Record
	if rec.Wallet != explorer.Wallet("Avalanche chain", addrA) || rec.FeeQuantity != nil || rec.Note != "" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestRunnerRetriesSinkWrites(t *testing.T) {
	path := writeFile(t, csvContent(txHeaderLine, txRows[0]))
	sink := &memorySink{failFor: 1}

	cfg := RunConfig{Input: path, MaxRetries: 2, RetryBackoff: time.Millisecond}
	if _, err := NewRunner(cfg, nil, []storage.Storage{sink}, nil).Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	if sink.calls != 2 || len(sink.records) != 1 {
		t.Fatalf("expected one retry, got %d calls and %d records", sink.calls, len(sink.records))
	}
}

func TestRunnerRequiresSinkAndInput(t *testing.T) {
	if _, err := NewRunner(RunConfig{Input: "x.csv"}, nil, nil, nil).Run(context.Background()); err == nil {
		t.Fatalf("expected error without sinks")
	}
	if _, err := NewRunner(RunConfig{}, nil, []storage.Storage{&memorySink{}}, nil).Run(context.Background()); err == nil {
		t.Fatalf("expected error without input")
	}
}

func TestRunnerEmptyFile(t *testing.T) {
	path := writeFile(t, "")
	if _, err := NewRunner(RunConfig{Input: path}, nil, []storage.Storage{&memorySink{}}, nil).Run(context.Background()); err == nil {
		t.Fatalf("expected error for empty file")
	}
}
