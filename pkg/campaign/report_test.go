package campaign

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	t.Run("counts and keeps failures in order", func(t *testing.T) {
		t.Parallel()

		outcomes := []Outcome{
			{Address: "a@x.io", Status: StatusSent},
			{Address: "b@x.io", Status: StatusFailed, Reason: "mailbox full"},
			{Address: "c@x.io", Status: StatusSent},
			{Address: "d@x.io", Status: StatusFailed, Reason: "rejected"},
		}

		r := Summarize(outcomes)

		assert.Equal(t, 4, r.Total)
		assert.Equal(t, 2, r.Sent)
		assert.Equal(t, 2, r.Failed)
		assert.Equal(t, []SendFailure{
			{Address: "b@x.io", Reason: "mailbox full"},
			{Address: "d@x.io", Reason: "rejected"},
		}, r.Errors)
	})

	t.Run("no outcomes", func(t *testing.T) {
		t.Parallel()

		r := Summarize(nil)
		assert.Equal(t, 0, r.Total)
		assert.NotNil(t, r.Errors)
		assert.Empty(t, r.Errors)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		outcomes := []Outcome{
			{Address: "a@x.io", Status: StatusFailed, Reason: "x"},
			{Address: "a@x.io", Status: StatusSent},
		}
		assert.Equal(t, Summarize(outcomes), Summarize(outcomes))
	})

	t.Run("invariants", func(t *testing.T) {
		t.Parallel()

		for n := range 8 {
			outcomes := make([]Outcome, 0, n)
			for i := range n {
				o := Outcome{Address: "a@x.io", Status: StatusSent}
				if i%3 == 0 {
					o = Outcome{Address: "a@x.io", Status: StatusFailed, Reason: "boom"}
				}
				outcomes = append(outcomes, o)
			}
			r := Summarize(outcomes)
			assert.Equal(t, r.Total, r.Sent+r.Failed)
			assert.Len(t, r.Errors, r.Failed)
		}
	})
}

func TestReport_JSON(t *testing.T) {
	t.Parallel()

	r := Summarize([]Outcome{
		{Address: "a@x.io", Status: StatusSent},
		{Address: "b@x.io", Status: StatusFailed, Reason: "bounced"},
	})
	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":2,"sent":1,"failed":1,"errors":[{"email":"b@x.io","error":"bounced"}]}`, string(data))

	data, err = json.Marshal(Summarize([]Outcome{{Address: "a@x.io", Status: StatusSent}}))
	require.NoError(t, err)
	assert.JSONEq(t, `{"total":1,"sent":1,"failed":0}`, string(data))
}

func TestStatus_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sent", StatusSent.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "unknown", Status(0).String())
}
