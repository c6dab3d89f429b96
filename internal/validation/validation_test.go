package validation_test

import (
	"errors"
	"testing"

	"go-item-api/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  *string  `json:"name" validate:"required,min=1"`
	Count *int     `json:"count" validate:"omitempty,gte=0"`
	Tags  []string `json:"tags"`
	Skip  string   `json:"-"`
}

func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantField  string
		wantConstr string
		wantCount  int
	}{
		{name: "Empty body", body: "  ", wantField: "", wantConstr: "required", wantCount: 1},
		{name: "Malformed JSON", body: `{"name":`, wantField: "", wantConstr: validation.ConstraintJSON, wantCount: 1},
		{name: "Array instead of object", body: `[1,2]`, wantField: "", wantConstr: validation.ConstraintType, wantCount: 1},
		{name: "Null body", body: `null`, wantField: "", wantConstr: validation.ConstraintType, wantCount: 1},
		{name: "Wrong field type", body: `{"name": 5}`, wantField: "name", wantConstr: validation.ConstraintType, wantCount: 1},
		{name: "Wrong element type", body: `{"tags": ["a", 1]}`, wantField: "tags", wantConstr: validation.ConstraintType, wantCount: 1},
		{name: "Null list", body: `{"tags": null}`, wantField: "tags", wantConstr: validation.ConstraintType, wantCount: 1},
		{name: "Null list element", body: `{"tags": [null]}`, wantField: "tags", wantConstr: validation.ConstraintType, wantCount: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var dst sample
			errs := validation.DecodeJSON([]byte(tt.body), &dst)
			require.Len(t, errs, tt.wantCount)
			assert.Equal(t, tt.wantField, errs[0].Field)
			assert.Equal(t, tt.wantConstr, errs[0].Constraint)
			assert.Equal(t, validation.LocationBody, errs[0].Location)
		})
	}
}

func TestDecodeJSON_ReportsEveryTypeMismatch(t *testing.T) {
	var dst sample
	errs := validation.DecodeJSON([]byte(`{"name": true, "count": "many", "tags": "x", "unknown": 1}`), &dst)

	require.Len(t, errs, 3)
	assert.True(t, errs.Has("name"))
	assert.True(t, errs.Has("count"))
	assert.True(t, errs.Has("tags"))
	assert.Equal(t, "must be a list of strings", findField(errs, "tags").Message)
	assert.Equal(t, "must be an integer", findField(errs, "count").Message)
}

func TestDecodeJSON_Success(t *testing.T) {
	var dst sample
	errs := validation.DecodeJSON([]byte(`{"name": "Foo", "count": null, "tags": ["a"], "Skip": "ignored"}`), &dst)

	assert.Empty(t, errs)
	require.NotNil(t, dst.Name)
	assert.Equal(t, "Foo", *dst.Name)
	assert.Nil(t, dst.Count)
	assert.Equal(t, []string{"a"}, dst.Tags)
	assert.Empty(t, dst.Skip)
}

func TestFromValidator(t *testing.T) {
	v := validation.New()
	empty := ""
	negative := -1

	err := v.Struct(sample{Name: &empty, Count: &negative})
	require.Error(t, err)

	errs := validation.FromValidator(err, validation.LocationBody, nil)
	require.Len(t, errs, 2)
	assert.Equal(t, "min", findField(errs, "name").Constraint)
	assert.Equal(t, "gte", findField(errs, "count").Constraint)
	assert.Equal(t, "must be greater than or equal to 0", findField(errs, "count").Message)

	t.Run("Skips fields that already failed", func(t *testing.T) {
		var skip validation.Errors
		skip.Add(validation.LocationBody, "name", validation.ConstraintType, "must be a string")
		errs := validation.FromValidator(err, validation.LocationBody, skip)
		require.Len(t, errs, 1)
		assert.Equal(t, "count", errs[0].Field)
	})

	t.Run("Non validator error", func(t *testing.T) {
		errs := validation.FromValidator(errors.New("boom"), validation.LocationQuery, nil)
		require.Len(t, errs, 1)
		assert.Equal(t, "invalid", errs[0].Constraint)
		assert.Equal(t, validation.LocationQuery, errs[0].Location)
	})
}

func TestErrors_Err(t *testing.T) {
	var errs validation.Errors
	assert.NoError(t, errs.Err())

	errs.Add(validation.LocationBody, "price", "gt", "must be greater than 0")
	errs.Add(validation.LocationQuery, "skip", validation.ConstraintType, "must be an integer")
	err := errs.Err()
	require.Error(t, err)
	assert.True(t, errors.Is(err, validation.ErrValidation))

	var ve *validation.Error
	require.True(t, errors.As(err, &ve))
	assert.True(t, ve.Has("price", "gt"))
	assert.False(t, ve.Has("price", "required"))
	assert.Contains(t, err.Error(), "body.price: must be greater than 0")
	assert.Contains(t, err.Error(), "query.skip: must be an integer")
}

func TestParseInt(t *testing.T) {
	n, fe := validation.ParseInt(validation.LocationQuery, "limit", "", 10)
	assert.Nil(t, fe)
	assert.Equal(t, 10, n)

	n, fe = validation.ParseInt(validation.LocationQuery, "limit", "25", 10)
	assert.Nil(t, fe)
	assert.Equal(t, 25, n)

	n, fe = validation.ParseInt(validation.LocationPath, "item_id", "-3", 0)
	assert.Nil(t, fe)
	assert.Equal(t, -3, n)

	_, fe = validation.ParseInt(validation.LocationPath, "item_id", "abc", 0)
	require.NotNil(t, fe)
	assert.Equal(t, "item_id", fe.Field)
	assert.Equal(t, validation.LocationPath, fe.Location)
	assert.Equal(t, validation.ConstraintType, fe.Constraint)
}

func findField(errs validation.Errors, field string) validation.FieldError {
	for _, f := range errs {
		if f.Field == field {
			return f
		}
	}
	return validation.FieldError{}
}
