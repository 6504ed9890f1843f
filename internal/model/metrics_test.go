package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeMetrics(t *testing.T) {
	m := ComputeMetrics("Alex: hey there\nSam: hi!\n\nAlex: how was your day?")

	assert.Equal(t, 49, m.CharCount)
	assert.Equal(t, 10, m.WordCount)
	assert.Equal(t, 3, m.LineCount)
}

func TestComputeMetricsEmpty(t *testing.T) {
	assert.Equal(t, TextMetrics{}, ComputeMetrics(""))
}

func TestComputeMetricsWhitespaceOnly(t *testing.T) {
	m := ComputeMetrics("   \n\t  \n")

	assert.Equal(t, 8, m.CharCount)
	assert.Zero(t, m.WordCount)
	assert.Zero(t, m.LineCount)
}

func TestComputeMetricsCharCountIsUntrimmed(t *testing.T) {
	m := ComputeMetrics("  hello  ")

	assert.Equal(t, 9, m.CharCount)
	assert.Equal(t, 1, m.WordCount)
	assert.Equal(t, 1, m.LineCount)
}

func TestComputeMetricsBlankLinesIgnored(t *testing.T) {
	m := ComputeMetrics("one\n\n\ntwo\n   \nthree")
	assert.Equal(t, 3, m.LineCount)
}

func TestComputeMetricsCollapsedWhitespaceWords(t *testing.T) {
	m := ComputeMetrics("a  b\tc\nd")
	assert.Equal(t, 4, m.WordCount)
}

func TestComputeMetricsLongInput(t *testing.T) {
	m := ComputeMetrics(strings.Repeat("word ", 500))
	assert.Equal(t, 2500, m.CharCount)
	assert.Equal(t, 500, m.WordCount)
}
