package ngau

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type heading struct {
	Course Deg `json:"course" yaml:"course"`
	Turn   Rad `json:"turn" yaml:"turn"`
}

func TestJSON(t *testing.T) {
	buf, err := json.Marshal(heading{Course: NewDeg(90.5), Turn: NewRad(-0.25)})
	require.NoError(t, err)
	require.JSONEq(t, `{"course": 90.5, "turn": -0.25}`, string(buf))

	var decoded heading
	require.NoError(t, json.Unmarshal(buf, &decoded))
	require.Equal(t, NewDeg(90.5), decoded.Course)
	require.Equal(t, NewRad(-0.25), decoded.Turn)

	t.Run("no unit conversion", func(t *testing.T) {
		var deg Deg
		require.NoError(t, json.Unmarshal([]byte(`3.5`), &deg))
		require.Equal(t, NewDeg(3.5), deg)

		var rad Rad
		require.NoError(t, json.Unmarshal([]byte(`180`), &rad))
		require.Equal(t, NewRad(180), rad)
	})

	t.Run("invalid", func(t *testing.T) {
		var deg Deg
		require.Error(t, json.Unmarshal([]byte(`"90"`), &deg))

		var rad Rad
		require.Error(t, json.Unmarshal([]byte(`{"value": 1}`), &rad))
	})

	t.Run("not a number", func(t *testing.T) {
		_, err := json.Marshal(NewDeg(float32(math.NaN())))
		require.Error(t, err)

		_, err = json.Marshal(NewRad(float32(math.Inf(1))))
		require.Error(t, err)
	})
}

func TestYAML(t *testing.T) {
	buf, err := yaml.Marshal(heading{Course: NewDeg(270), Turn: NewRad(1.5)})
	require.NoError(t, err)
	require.Equal(t, "course: 270\nturn: 1.5\n", string(buf))

	var decoded heading
	require.NoError(t, yaml.Unmarshal(buf, &decoded))
	require.Equal(t, NewDeg(270), decoded.Course)
	require.Equal(t, NewRad(1.5), decoded.Turn)

	t.Run("special values", func(t *testing.T) {
		buf, err := yaml.Marshal(NewDeg(float32(math.Inf(-1))))
		require.NoError(t, err)

		var deg Deg
		require.NoError(t, yaml.Unmarshal(buf, &deg))
		require.True(t, math.IsInf(float64(deg.Value()), -1))

		var rad Rad
		require.NoError(t, yaml.Unmarshal([]byte(".nan"), &rad))
		require.True(t, math.IsNaN(float64(rad.Value())))
	})

	t.Run("invalid", func(t *testing.T) {
		var deg Deg
		require.Error(t, yaml.Unmarshal([]byte("north"), &deg))
	})
}
