package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairIDIsOrderIndependent(t *testing.T) {
	assert.Equal(t, "anna#zed", PairID("anna", "zed"))
	assert.Equal(t, "anna#zed", PairID("zed", "anna"))
	assert.Equal(t, PairID("a", "b"), PairID("b", "a"))
}
