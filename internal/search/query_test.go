package search

import (
	"testing"

	"github.com/docmanager/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doc(pairs ...string) *models.Document {
	a := models.NewAttributes()
	for i := 0; i+1 < len(pairs); i += 2 {
		a.Set(pairs[i], pairs[i+1])
	}
	return models.NewDocument(a)
}

func TestParse(t *testing.T) {
	q, err := Parse("patient:John,body:Diet Coke")
	require.NoError(t, err)
	assert.Equal(t, []Predicate{
		{Attribute: "patient", Substring: "John"},
		{Attribute: "body", Substring: "Diet Coke"},
	}, q.Predicates)
	assert.Equal(t, "patient:John,body:Diet Coke", q.String())
}

func TestParse_ColonInValue(t *testing.T) {
	q, err := Parse("body:ratio 1:2:3")
	require.NoError(t, err)
	require.Len(t, q.Predicates, 1)
	assert.Equal(t, "ratio 1:2:3", q.Predicates[0].Substring)
}

func TestParse_WhitespaceInValueIsKept(t *testing.T) {
	q, err := Parse(" patient : John ")
	require.NoError(t, err)
	require.Len(t, q.Predicates, 1)
	assert.Equal(t, "patient", q.Predicates[0].Attribute)
	assert.Equal(t, " John ", q.Predicates[0].Substring)
}

func TestParse_EmptyValue(t *testing.T) {
	q, err := Parse("address:")
	require.NoError(t, err)
	assert.Equal(t, []Predicate{{Attribute: "address", Substring: ""}}, q.Predicates)
}

func TestParse_Empty(t *testing.T) {
	for _, s := range []string{"", "   ", "\t\n"} {
		q, err := Parse(s)
		require.NoError(t, err)
		assert.Empty(t, q.Predicates)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, s := range []string{"patient", "patient:John,body", ":John", "  :x", "a:b,", ",a:b"} {
		_, err := Parse(s)
		assert.ErrorIs(t, err, ErrInvalidQuery, s)
	}
}

func TestQuery_Matches(t *testing.T) {
	report := doc(models.AttrPatient, "John Colby", models.AttrBody, "switch to Diet Coke")
	letter := doc(models.AttrPatient, "John Colby", models.AttrBody, "re-scheduling")
	image := doc(models.AttrWidth, "320")
	empty := doc(models.AttrAddress, "")

	q, err := Parse("patient:John,body:Diet Coke")
	require.NoError(t, err)
	assert.True(t, q.Matches(report))
	assert.False(t, q.Matches(letter))
	assert.False(t, q.Matches(image))

	q, err = Parse("patient:john")
	require.NoError(t, err)
	assert.False(t, q.Matches(report), "matching is case-sensitive")

	q, err = Parse("address:")
	require.NoError(t, err)
	assert.True(t, q.Matches(empty))
	assert.False(t, q.Matches(report), "absent attribute never matches")
}

func TestQuery_FilterKeepsOrder(t *testing.T) {
	docs := []*models.Document{
		doc(models.AttrType, "LETTER", models.AttrPatient, "A"),
		doc(models.AttrType, "IMAGE"),
		doc(models.AttrType, "REPORT", models.AttrPatient, "B"),
	}

	all := Query{}.Filter(docs)
	assert.Equal(t, docs, all)

	q, err := Parse("patient:")
	require.NoError(t, err)
	got := q.Filter(docs)
	require.Len(t, got, 2)
	assert.Same(t, docs[0], got[0])
	assert.Same(t, docs[2], got[1])
}
