// Package export builds the downloadable CSV document for a user's filtered
// transaction list.
package export

import (
	"bytes"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/flowi-app/flowi-server/internal/storage/category"
	"github.com/flowi-app/flowi-server/internal/storage/transaction"
)

const header = "Fecha,Tipo,Descripción,Categoría,Monto,Notas"

const uncategorized = "Sin categoría"

// Filename returns the download name for an export generated on the given day.
func Filename(now time.Time) string {
	return "flowi-transacciones-" + now.Format("2006-01-02") + ".csv"
}

// TransactionsCSV renders the transactions as UTF-8 CSV with a BOM so
// spreadsheet tools pick up the encoding. Description and notes are quoted;
// the category column carries the resolved name or a fixed fallback.
func TransactionsCSV(txs []*transaction.Transaction, cats []*category.Category) []byte {
	catByID := make(map[uuid.UUID]*category.Category, len(cats))
	for _, cat := range cats {
		catByID[cat.ID] = cat
	}

	var buf bytes.Buffer
	buf.WriteString("\uFEFF")
	buf.WriteString(header)
	buf.WriteByte('\n')

	for _, tx := range txs {
		tipo := "Gasto"
		if tx.Type == transaction.TypeIncome {
			tipo = "Ingreso"
		}

		catName := uncategorized
		if tx.CategoryID != nil {
			if cat, ok := catByID[*tx.CategoryID]; ok {
				catName = cat.Name
			}
		}

		notes := ""
		if tx.Notes != nil {
			notes = *tx.Notes
		}

		buf.WriteString(tx.Date.Format("2006-01-02"))
		buf.WriteByte(',')
		buf.WriteString(tipo)
		buf.WriteByte(',')
		buf.WriteString(quote(tx.Description))
		buf.WriteByte(',')
		buf.WriteString(catName)
		buf.WriteByte(',')
		buf.WriteString(tx.Amount.String())
		buf.WriteByte(',')
		buf.WriteString(quote(notes))
		buf.WriteByte('\n')
	}

	return buf.Bytes()
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
