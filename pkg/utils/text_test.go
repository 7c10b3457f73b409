package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "João Silva", expected: "joao-silva"},
		{input: "  Expert   Ação  ", expected: "expert-acao"},
		{input: "Cliente (VIP) #1", expected: "cliente-vip-1"},
		{input: "a -- b", expected: "a-b"},
		{input: "-borda-", expected: "borda"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Slugify(tt.input))
		})
	}
}

func TestFoldHeader(t *testing.T) {
	assert.Equal(t, "CLASSIFICACAO", FoldHeader(" Classificação "))
	assert.Equal(t, "TENDENCIA 7D", FoldHeader("tendência 7d"))
	assert.True(t, strings.Contains(FoldHeader("Valor Total (R$)"), "VALOR TOTAL"))
}

func TestGenerateRunID(t *testing.T) {
	id, err := GenerateRunID()
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "run_"))
	assert.Len(t, id, 14)
}
