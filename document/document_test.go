package document_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/havenmesh/triangulate/document"
)

func TestParseCircleAction(t *testing.T) {
	raw := `{
		"intent": "include",
		"geometry": "circle",
		"scalars": [ 1.0 ],
		"points": [{ "x": 1.0,  "y": 1.0 }]
	}`

	var a document.Action
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	assert.Equal(t, document.IntentInclude, a.Intent)
	assert.Equal(t, document.GeometryCircle, a.Geometry)
	require.Len(t, a.Scalars, 1)
	assert.Equal(t, 1.0, a.Scalars[0])
	require.Len(t, a.Points, 1)
	assert.Equal(t, 1.0, a.Points[0].X)
	assert.Equal(t, 1.0, a.Points[0].Y)
}

func TestParsePolylineAction(t *testing.T) {
	raw := `{
		"intent": "include",
		"geometry": "polyline",
		"points": [
			{ "x": 0.0,  "y": 0.0 },
			{ "x": 1.0,  "y": 0.0 },
			{ "x": 1.0,  "y": 1.0 }
		]
	}`

	var a document.Action
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	assert.Empty(t, a.Scalars)
	assert.Empty(t, a.Assemble)
	require.Len(t, a.Points, 3)
	assert.Equal(t, 1.0, a.Points[1].X)
}

func TestParseSegmentsAction(t *testing.T) {
	raw := `{
		"intent": "constraint",
		"geometry": "segments",
		"points": [
			{ "x": 0.0,  "y": 0.0 },
			{ "x": 1.0,  "y": 0.0 },
			{ "x": 1.0,  "y": 1.0 },
			{ "x": 0.0,  "y": 1.0 }
		],
		"assemble": [
			[ 0, 1 ],
			[ 2, 3 ]
		]
	}`

	var a document.Action
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	assert.Equal(t, document.IntentConstraint, a.Intent)
	assert.Equal(t, document.GeometrySegments, a.Geometry)
	require.Len(t, a.Points, 4)
	require.Len(t, a.Assemble, 2)
	assert.Equal(t, []int{0, 1}, a.Assemble[0])
	assert.Equal(t, []int{2, 3}, a.Assemble[1])
}

func TestParseTriangulationInput(t *testing.T) {
	raw := `{
		"name": "sample_1",
		"date": "2020-09-03T00:09:27.591Z",
		"actions": [
			{
				"intent": "include",
				"geometry": "circle",
				"scalars": [ 1.0 ],
				"points": [{ "x": 1.0,  "y": 1.0 }]
			}
		],
		"params": {
			"max_area": 0.001,
			"quality": 1.0
		}
	}`

	var in document.Input
	require.NoError(t, json.Unmarshal([]byte(raw), &in))

	assert.Equal(t, "sample_1", in.Name)
	assert.Equal(t, "2020-09-03T00:09:27.591Z", in.Date)
	require.Len(t, in.Actions, 1)
	assert.Equal(t, 1.0, in.Params.Quality)
	require.NotNil(t, in.Params.MaxArea)
	assert.Equal(t, 0.001, *in.Params.MaxArea)
}

func TestParseRefineParamsNoMaxArea(t *testing.T) {
	raw := `{ "quality": 1.0 }`

	var p document.RefineParams
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Nil(t, p.MaxArea)
	assert.Equal(t, 1.0, p.Quality)
}

func TestInputNormalizeFillsDefaults(t *testing.T) {
	in := document.Input{Name: "unnamed"}
	in.Normalize()

	assert.NotEqual(t, "", in.Date)
	assert.NotEqual(t, [16]byte{}, [16]byte(in.ID))
}

func TestOutputEncodesEmptyTetrahedrons(t *testing.T) {
	out := document.Output{
		Coordinates:  []document.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}},
		Triangles:    []document.Triangle{{V1: 0, V2: 1, V3: 2}},
		Tetrahedrons: []struct{}{},
	}
	encoded, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"tetrahedrons":[]`)
}
