package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateLeagueRequest_Fields(t *testing.T) {
	t.Run("only submitted fields", func(t *testing.T) {
		var req UpdateLeagueRequest
		require.NoError(t, json.Unmarshal([]byte(`{"league_title":"NHL"}`), &req))

		assert.False(t, req.IsEmpty())
		assert.Equal(t, map[string]interface{}{"league_title": "NHL"}, req.Fields())
	})

	t.Run("explicit empty members is submitted", func(t *testing.T) {
		var req UpdateLeagueRequest
		require.NoError(t, json.Unmarshal([]byte(`{"members":""}`), &req))

		assert.Equal(t, map[string]interface{}{"members": ""}, req.Fields())
	})

	t.Run("all fields", func(t *testing.T) {
		var req UpdateLeagueRequest
		body := `{"league_title":"NBA","league_description":"Basketball","members":"x@y.com"}`
		require.NoError(t, json.Unmarshal([]byte(body), &req))

		assert.Equal(t, map[string]interface{}{
			"league_title":       "NBA",
			"league_description": "Basketball",
			"members":            "x@y.com",
		}, req.Fields())
	})

	t.Run("id in body is ignored", func(t *testing.T) {
		var req UpdateLeagueRequest
		require.NoError(t, json.Unmarshal([]byte(`{"_id":"other"}`), &req))

		assert.True(t, req.IsEmpty())
		assert.Empty(t, req.Fields())
	})
}

func TestMessageResponse_JSON(t *testing.T) {
	data, err := json.Marshal(MessageResponse{Message: MessageLeagueDeleted})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"League deleted"}`, string(data))
}
