package mockpages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_CreateAfterEnsureListsEachRoomOnce(t *testing.T) {
	s := NewStore()
	s.Ensure("2")
	assert.Equal(t, "2", s.Create().ID)
	assert.Equal(t, "2", s.Create().ID)

	assert.Equal(t, []Room{{ID: "2"}}, s.List())
}

func TestStore_CreateNumbersInOrder(t *testing.T) {
	s := NewStore()
	s.Create()
	s.Create()
	s.Ensure("1")

	assert.Equal(t, []Room{{ID: "1"}, {ID: "2"}}, s.List())
}
