package draft

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yuhsinc/pocket-ledger/internal/model"
)

func validDraft() model.Draft {
	return model.Draft{
		Mode:       model.ModeExpense,
		Amount:     85,
		Note:       "咖啡",
		Date:       "2024-01-01",
		CategoryID: model.CategoryCoffee,
	}
}

func TestValidateForCommit(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*model.Draft)
		wantErr error
	}{
		{"valid draft", func(_ *model.Draft) {}, nil},
		{"invalid mode", func(d *model.Draft) { d.Mode = "transfer" }, ErrBadMode},
		{"empty note", func(d *model.Draft) { d.Note = "" }, ErrEmptyNote},
		{"whitespace note", func(d *model.Draft) { d.Note = "  " }, ErrEmptyNote},
		{"note too long", func(d *model.Draft) { d.Note = strings.Repeat("字", 16) }, ErrNoteTooLong},
		{"note at limit is fine", func(d *model.Draft) { d.Note = strings.Repeat("字", 15) }, nil},
		{"zero amount", func(d *model.Draft) { d.Amount = 0 }, ErrBadAmount},
		{"negative amount", func(d *model.Draft) { d.Amount = -1 }, ErrBadAmount},
		{"malformed date", func(d *model.Draft) { d.Date = "01/02/2024" }, ErrBadDate},
		{"impossible date", func(d *model.Draft) { d.Date = "2024-02-31" }, ErrBadDate},
		{"missing category", func(d *model.Draft) { d.CategoryID = "" }, ErrNoCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDraft()
			tt.mutate(&d)

			err := ValidateForCommit(d)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
