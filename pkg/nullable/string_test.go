package nullable

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type holder struct {
	Note String `json:"note"`
}

func TestStringDecode(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		set     bool
		wantNil bool
		want    string
	}{
		{name: "absent", body: `{}`, set: false, wantNil: true},
		{name: "null", body: `{"note":null}`, set: true, wantNil: true},
		{name: "value", body: `{"note":"Budi"}`, set: true, want: "Budi"},
		{name: "empty", body: `{"note":""}`, set: true, want: ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var h holder
			require.NoError(t, json.Unmarshal([]byte(tc.body), &h))
			assert.Equal(t, tc.set, h.Note.Set)
			if tc.wantNil {
				assert.Nil(t, h.Note.Value)
				return
			}
			require.NotNil(t, h.Note.Value)
			assert.Equal(t, tc.want, *h.Note.Value)
		})
	}

	var h holder
	assert.Error(t, json.Unmarshal([]byte(`{"note":12}`), &h))
}

func TestStringApplyTo(t *testing.T) {
	current := "Nill"
	dst := &current

	String{}.ApplyTo(&dst)
	require.NotNil(t, dst)
	assert.Equal(t, "Nill", *dst)

	Of("Rina").ApplyTo(&dst)
	require.NotNil(t, dst)
	assert.Equal(t, "Rina", *dst)

	Null().ApplyTo(&dst)
	assert.Nil(t, dst)
}

func TestStringMarshal(t *testing.T) {
	out, err := json.Marshal(holder{Note: Of("x")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"note":"x"}`, string(out))

	out, err = json.Marshal(holder{Note: Null()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"note":null}`, string(out))
}
