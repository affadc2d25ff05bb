package labeling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodeFormat(t *testing.T) {
	format, err := NewCodeFormat("상품코드", "{DATE:yyMMdd}-{SEQ:4}")
	require.NoError(t, err)
	assert.Equal(t, int64(1), format.Seq)

	_, err = NewCodeFormat("  ", "{SEQ:4}")
	assert.Error(t, err)

	_, err = NewCodeFormat("이름", "   ")
	assert.Error(t, err)
}

func TestCodeFormatRender(t *testing.T) {
	now := time.Date(2024, 3, 7, 9, 5, 2, 0, time.Local)

	tests := []struct {
		name     string
		pattern  string
		seq      int64
		sku      string
		expected string
	}{
		{
			name:     "date seq and sku tokens",
			pattern:  "{DATE:yyyyMMdd}-{SKU}-{SEQ:4}",
			seq:      7,
			sku:      "TS-001",
			expected: "20240307-TS-001-0007",
		},
		{
			name:     "two digit year not consumed by four digit token",
			pattern:  "{DATE:yyMMdd HHmmss}",
			seq:      1,
			expected: "240307 090502",
		},
		{
			name:     "sequence wider than the configured width prints in full",
			pattern:  "{SEQ:2}",
			seq:      12345,
			expected: "12345",
		},
		{
			name:     "missing sku renders empty",
			pattern:  "{SKU}/{SEQ:3}",
			seq:      42,
			expected: "/042",
		},
		{
			name:     "repeated tokens expand independently",
			pattern:  "{SEQ:2}{SEQ:2}",
			seq:      3,
			expected: "0303",
		},
		{
			name:     "pattern without tokens passes through",
			pattern:  "LBL-FIXED",
			seq:      9,
			expected: "LBL-FIXED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format := &CodeFormat{Name: "f", Pattern: tt.pattern, Seq: tt.seq}
			assert.Equal(t, tt.expected, format.Render(now, tt.sku))
		})
	}
}

func TestCodeFormatAdvance(t *testing.T) {
	format, err := NewCodeFormat("f", "{SEQ:4}")
	require.NoError(t, err)
	now := time.Now()

	var got []string
	for range 3 {
		got = append(got, format.Render(now, ""))
		format.Advance()
	}
	assert.Equal(t, []string{"0001", "0002", "0003"}, got)
}

func TestCodeFormatApply(t *testing.T) {
	format, err := NewCodeFormat("상품코드", "{SEQ:4}")
	require.NoError(t, err)
	format.Seq = 7

	name := "  입고 코드  "
	pattern := "{DATE:yyMMdd}-{SEQ:4}"
	require.NoError(t, format.Apply(CodeFormatPatch{Name: &name, Pattern: &pattern}))
	assert.Equal(t, "입고 코드", format.Name)
	assert.Equal(t, pattern, format.Pattern)
	assert.Equal(t, int64(7), format.Seq)

	blank := "   "
	err = format.Apply(CodeFormatPatch{Name: &blank})
	assert.EqualError(t, err, "Format name cannot be empty")

	err = format.Apply(CodeFormatPatch{Pattern: &blank})
	assert.EqualError(t, err, "Format pattern cannot be empty")

	// Rejected patches leave the format untouched.
	assert.Equal(t, "입고 코드", format.Name)
	assert.Equal(t, pattern, format.Pattern)
}
