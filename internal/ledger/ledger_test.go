package ledger

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

const confirmDoc = `<html><body>
<p>您好，以下為成交回報：</p>
<table><thead><tr><td>商品</td><td>狀態</td></tr></thead>
<tbody><tr><td>decoy</td><td>ok</td></tr></tbody></table>
<table>
<thead><tr><td>成交時間</td><td>委託單號</td><td>股號</td><td>股票名稱</td><td>類別</td><td>股數</td><td>單價</td><td>價金</td></tr></thead>
<tbody>
<tr><td>09:00:01</td><td>A001</td><td>2330</td><td>台積電</td><td>現買</td><td>1,000</td><td>600</td><td>600,000</td></tr>
<tr><td>09:05:00</td><td>A002</td><td>0050</td><td>元大台灣50</td><td>現賣</td><td>500</td><td>140</td><td>70,000</td></tr>
</tbody>
</table>
</body></html>`

const noTableDoc = `<html><body><p>本日無成交。</p></body></html>`

func TestTradeDateFromName(t *testing.T) {
	if date, ok := TradeDateFromName("confirm_20240115_v2.html"); !ok || date != "2024/01/15" {
		t.Errorf("Expected 2024/01/15, got %q %v", date, ok)
	}
	if _, ok := TradeDateFromName("confirm_no_date.html"); ok {
		t.Error("Expected no date from identifier without digit run")
	}
	if _, ok := TradeDateFromName("confirm_20241335.html"); ok {
		t.Error("Expected invalid calendar date to be rejected")
	}
}

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestCollect(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "confirm_20240115.html", confirmDoc)
	write(t, dir, "confirm_no_date.html", confirmDoc) // skipped: no date
	write(t, dir, "confirm_20240116.html", noTableDoc)
	write(t, dir, "notes_20240115.txt", "not a document")

	records, err := Collect(context.Background(), dir)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}

	if records[0].TradeDate != "2024/01/15" || records[1].TradeDate != "2024/01/15" {
		t.Errorf("Expected trade date from filename on every record")
	}
	if records[0].OrderID != "A001" || records[1].OrderID != "A002" {
		t.Errorf("Expected document row order preserved, got %s then %s",
			records[0].OrderID, records[1].OrderID)
	}
	if records[0].Shares != 1000 {
		t.Errorf("Expected normalized shares 1000, got %d", records[0].Shares)
	}
}

func TestCollectEmptyDirectory(t *testing.T) {
	records, err := Collect(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected empty ledger, got %d records", len(records))
	}
}

func TestCollectMissingDirectory(t *testing.T) {
	if _, err := Collect(context.Background(), filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("Expected error for unreadable directory")
	}
}

func TestCollectDocumentOrderIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "b_20240116.html", confirmDoc)
	write(t, dir, "a_20240115.html", confirmDoc)

	records, err := Collect(context.Background(), dir)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("Expected 4 records, got %d", len(records))
	}
	if records[0].TradeDate != "2024/01/15" || records[2].TradeDate != "2024/01/16" {
		t.Errorf("Expected lexicographic file order, got %s then %s",
			records[0].TradeDate, records[2].TradeDate)
	}
}
