package consulta

import (
	"strings"
	"testing"
	"time"

	"github.com/consulta-org/consulta/catalog"
)

func TestAsk(t *testing.T) {
	dataset := catalog.Generate(30, catalog.DefaultSeed, time.Now())

	result := Ask("stock total por tipo", dataset)
	if result == nil {
		t.Fatal("nil result")
	}
	if _, ok := result.Metrics["stock_total"]; !ok {
		t.Errorf("metrics = %v, want stock_total", result.Metrics)
	}
	if !strings.Contains(result.Summary, "agrupado por subtype") {
		t.Errorf("summary = %q", result.Summary)
	}

	fallback := Ask("hola", dataset)
	if len(fallback.Rows) != 10 {
		t.Errorf("got %d rows, want the default 10", len(fallback.Rows))
	}
}
