package utils

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgressBar_Render(t *testing.T) {
	var buf bytes.Buffer
	pb := NewProgressBar(&buf, 4, "Exporting locales")

	pb.Increment()
	assert.Contains(t, buf.String(), "Exporting locales [##########------------------------------] 25.0% (1/4)")

	pb.Finish()
	assert.Contains(t, buf.String(), "100.0% (4/4)")
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}

func TestProgressBar_ClampsAndIgnoresEmptyTotal(t *testing.T) {
	var buf bytes.Buffer
	pb := NewProgressBar(&buf, 2, "x")
	pb.Update(5)
	assert.Contains(t, buf.String(), "(2/2)")

	buf.Reset()
	empty := NewProgressBar(&buf, 0, "x")
	empty.Increment()
	assert.Empty(t, buf.String())
}
