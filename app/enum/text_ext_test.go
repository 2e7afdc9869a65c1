package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextVariant_Class(t *testing.T) {
	tests := []struct {
		variant  TextVariant
		expected string
	}{
		{TextVariantRegular, "paragraph-regular"},
		{TextVariantBold, "paragraph-bold"},
		{TextVariantSmall, "paragraph-small"},
		{TextVariant{}, "paragraph-regular"},
	}

	for _, tc := range tests {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.variant.Class())
		})
	}
}
