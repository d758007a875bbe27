package catalog

import (
	"testing"

	"github.com/flipbooklib/flipbook/model"
	"github.com/stretchr/testify/assert"
)

func sampleBooks() []*model.EBook {
	return []*model.EBook{
		{ID: "1", Title: "The River Journey", TitleLo: "ການເດີນທາງແม่น้ำ", Description: "A boat trip", DescriptionLo: "ການເດີນທາງເຮືອ"},
		{ID: "2", Title: "Mountain Tales", TitleLo: "ນິທານພູ", Description: "Stories from the hills", DescriptionLo: "ເລື່ອງເລົ່າ"},
		{ID: "3", Title: "Cooking at Home", TitleLo: "ແຕ່ງກິນຢູ່ເຮືອນ", Description: "Family recipes", DescriptionLo: "ສູດອາຫານ"},
	}
}

func TestFilterEmptyTermReturnsAll(t *testing.T) {
	books := sampleBooks()
	assert.Equal(t, books, Filter(books, ""))
	assert.Equal(t, books, Filter(books, "   "))
}

func TestFilterIsCaseInsensitive(t *testing.T) {
	books := sampleBooks()

	got := Filter(books, "RIVER")
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilterMatchesAnyOfFourFields(t *testing.T) {
	books := sampleBooks()

	// English description only.
	got := Filter(books, "recipes")
	assert.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	// Secondary-locale title only.
	got = Filter(books, "ນິທານ")
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFilterPreservesOrder(t *testing.T) {
	books := sampleBooks()
	got := Filter(books, "t")
	ids := make([]string, 0, len(got))
	for _, b := range got {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []string{"1", "2", "3"}, ids)
}

func TestFilterNoMatch(t *testing.T) {
	got := Filter(sampleBooks(), "submarine")
	assert.Empty(t, got)
}
