package targets

import (
	"testing"

	"github.com/Manu343726/tdesc/pkg/isa/regs"
	"github.com/stretchr/testify/assert"
)

func TestAllShippedTargetsDescribeSuccessfully(t *testing.T) {
	for _, name := range Names() {
		description, err := Describe(name)

		assert.Nil(t, err)
		assert.NotNil(t, description)
		assert.Equal(t, name, description.Isa())
		assert.NotEmpty(t, description.AllBanks())
		assert.NotEmpty(t, description.AllClasses())
	}
}

func TestDescribeRejectsUnknownTargets(t *testing.T) {
	_, err := Describe("z80")
	assert.ErrorIs(t, err, regs.ErrConfiguration)
}
