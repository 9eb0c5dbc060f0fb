package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.January, 1)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-01"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d.Time))
}

func TestDateJSONInvalid(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"Nov 10, 2024"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`12345`), &d))
}

func TestDateBSONTruncatesTimeOfDay(t *testing.T) {
	// A datetime stored mid-afternoon must read back as the same calendar
	// date, regardless of the time-of-day component.
	stored := bson.M{"due_date": time.Date(2025, time.November, 15, 14, 30, 45, 0, time.UTC)}

	raw, err := bson.Marshal(stored)
	require.NoError(t, err)

	var out struct {
		DueDate Date `bson:"due_date"`
	}
	require.NoError(t, bson.Unmarshal(raw, &out))

	assert.Equal(t, NewDate(2025, time.November, 15).Time, out.DueDate.Time)
}

func TestDateBSONRoundTrip(t *testing.T) {
	in := struct {
		D Date `bson:"d"`
	}{D: NewDate(2024, time.June, 1)}

	raw, err := bson.Marshal(in)
	require.NoError(t, err)

	var out struct {
		D Date `bson:"d"`
	}
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.Equal(t, in.D.Time, out.D.Time)
}

func TestDateBSONFromString(t *testing.T) {
	raw, err := bson.Marshal(bson.M{"d": "2024-03-01"})
	require.NoError(t, err)

	var out struct {
		D Date `bson:"d"`
	}
	require.NoError(t, bson.Unmarshal(raw, &out))
	assert.Equal(t, NewDate(2024, time.March, 1).Time, out.D.Time)
}
