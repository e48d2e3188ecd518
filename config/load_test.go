package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrnxzz/rowpredicate/config"
	"github.com/lrnxzz/rowpredicate/predicate"
)

const doc = `
filters:
  active_adults:
    op: and
    terms:
      - field: age
        cmp: GREATER_THAN_OR_EQUAL
        value: "18"
      - field: status
        cmp: EQUALS
        value: active
  discounted:
    op: or
    terms:
      - field: tag
        in: [sale, clearance]
      - field: price
        cmp: LESS_THAN
        value: "10"
  not_archived:
    not:
      field: status
      cmp: EQUALS
      value: archived
`

func TestLoadBuildsNamedFilters(t *testing.T) {
	filters, err := config.Load(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, filters, 3)

	active := filters["active_adults"]
	require.NotNil(t, active)
	assert.True(t, active.Matches(predicate.Row{"age": "30", "status": "active"}))
	assert.False(t, active.Matches(predicate.Row{"age": "10", "status": "active"}))

	discounted := filters["discounted"]
	require.NotNil(t, discounted)
	assert.True(t, discounted.Matches(predicate.Row{"tag": "sale", "price": "50"}))
	assert.True(t, discounted.Matches(predicate.Row{"tag": "regular", "price": "5"}))
	assert.False(t, discounted.Matches(predicate.Row{"tag": "regular", "price": "50"}))

	notArchived := filters["not_archived"]
	require.NotNil(t, notArchived)
	assert.True(t, notArchived.Matches(predicate.Row{"status": "active"}))
	assert.False(t, notArchived.Matches(predicate.Row{"status": "archived"}))
}

func TestLoadInvalidYAML(t *testing.T) {
	_, err := config.Load(strings.NewReader("not: [valid"))
	assert.Error(t, err)
}
