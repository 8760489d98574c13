package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnswerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		data    string
		want    answerToken
		wantErr bool
	}{
		{data: "q0_a0_3f9a12bc", want: answerToken{0, 0, "3f9a12bc"}},
		{data: "q9_a3_0", want: answerToken{9, 3, "0"}},
		{data: "q12_a10_deadbeef", want: answerToken{12, 10, "deadbeef"}},
		{data: "", wantErr: true},
		{data: "q", wantErr: true},
		{data: "q1", wantErr: true},
		{data: "q1_a", wantErr: true},
		{data: "q1_a1", wantErr: true},
		{data: "q1_a1_", wantErr: true},
		{data: "q_a1_ab", wantErr: true},
		{data: "x1_a1_ab", wantErr: true},
		{data: "q-1_a1_ab", wantErr: true},
		{data: "q+1_a1_ab", wantErr: true},
		{data: "q1_a1_a2", want: answerToken{1, 1, "a2"}},
		{data: "q1_a1_ab_cd", wantErr: true},
		{data: "q1_a1_XYZ", wantErr: true},
		{data: "q1_a1_3F9A", wantErr: true},
		{data: "q1_a 1_ab", wantErr: true},
		{data: "q1_a1_0123456789abcdef0", wantErr: true},
		{data: "q99999999999999999999_a1_ab", wantErr: true},
		{data: "new_quiz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.data, func(t *testing.T) {
			t.Parallel()

			got, err := parseAnswerToken(tt.data)
			if tt.wantErr {
				assert.ErrorIs(t, err, errBadToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAnswerTokenRoundTrip(t *testing.T) {
	t.Parallel()

	for q := 0; q < 12; q++ {
		for a := 0; a < 5; a++ {
			data := encodeAnswerToken("c0ffee12", q, a)
			assert.LessOrEqual(t, len(data), 64)

			got, err := parseAnswerToken(data)
			require.NoError(t, err)
			assert.Equal(t, answerToken{question: q, position: a, attempt: "c0ffee12"}, got)
		}
	}
}
