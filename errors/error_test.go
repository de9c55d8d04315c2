// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type mockErr struct{}

func (m *mockErr) Error() string {
	return "mockErr"
}

var myErr = new(mockErr)

func TestKindError(t *testing.T) {
	err := New(KindParse, "wrong value: <%s>", "12x")
	assert.EqualError(t, err, "wrong value: <12x>")
	assert.Equal(t, KindParse, KindOf(err))
	assert.True(t, IsKind(err, KindParse))
	assert.False(t, IsKind(err, KindOverflow))

	wrapped := NewPositionalError(3, err)
	assert.Equal(t, KindParse, KindOf(wrapped), "KindOf should see through wrapping")

	assert.Equal(t, KindUnknown, KindOf(myErr))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "configuration", KindConfiguration.String())
	assert.Equal(t, "parse", KindParse.String())
	assert.Equal(t, "overflow", KindOverflow.String())
	assert.Equal(t, "type mismatch", KindTypeMismatch.String())
	assert.Equal(t, "unknown", KindUnknown.String())
}

func TestPositionalError(t *testing.T) {
	pos := 42
	err := NewPositionalError(pos, myErr)

	var posErr *PositionalError
	assert.ErrorAs(t, err, &posErr)
	if errors.As(err, &posErr) {
		assert.Equal(t, pos, posErr.Position())
		assert.Equal(t, myErr, posErr.Unwrap())
	}
}

func TestErrors(t *testing.T) {
	assert.Nil(t, NewErrors(), "NewErrors should return nil on empty array")
	assert.Nil(t, NewErrors(nil, nil), "NewErrors should return nil when errors only contain nils")
	assert.Equal(t, myErr, NewErrors(myErr), "NewErrors should unwrap a single error")

	err := NewErrors(nil, myErr, nil, myErr, nil)
	var errs *Errors
	assert.ErrorAs(t, err, &errs)
	if errors.As(err, &errs) {
		assert.ElementsMatch(t, []error{myErr, myErr}, errs.Errors())
		assert.Equal(t, myErr, errs.Unwrap())
	}
}
