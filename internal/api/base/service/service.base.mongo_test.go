// Package baseservice - Test chuyển đổi dữ liệu update.
package baseservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUpdateData_PassThrough(t *testing.T) {
	input := &UpdateData{
		Set: map[string]interface{}{"name": "Sara"},
		Inc: map[string]interface{}{"version": int64(1)},
	}

	got, err := ToUpdateData(input)
	require.NoError(t, err, "UpdateData phải được dùng trực tiếp")
	assert.Same(t, input, got)

	byValue, err := ToUpdateData(UpdateData{Set: map[string]interface{}{"name": "Omar"}})
	require.NoError(t, err)
	assert.Equal(t, "Omar", byValue.Set["name"])
}

func TestToUpdateData_MapToSet(t *testing.T) {
	got, err := ToUpdateData(map[string]interface{}{
		"name":  "Sara",
		"phone": "0101111111",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sara", got.Set["name"])
	assert.Equal(t, "0101111111", got.Set["phone"])
	assert.Empty(t, got.Inc)
}

func TestToUpdateData_StripsID(t *testing.T) {
	got, err := ToUpdateData(map[string]interface{}{
		"_id":  "aaaaaaaaaaaaaaaaaaaaaaaa",
		"name": "Sara",
	})
	require.NoError(t, err)
	assert.NotContains(t, got.Set, "_id", "client không được tự ý sửa _id")
	assert.Equal(t, "Sara", got.Set["name"])
}

func TestToUpdateData_Nil(t *testing.T) {
	_, err := ToUpdateData(nil)
	assert.Error(t, err, "dữ liệu nil phải bị từ chối")
}
