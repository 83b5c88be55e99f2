// SPDX-License-Identifier: MIT
package geom_test

import (
	"testing"

	"github.com/katalvlaran/spatial/geom"
)

var (
	sinkMatrix geom.Matrix4x4
	sinkQuat   geom.Quaternion
	sinkVec3   geom.Vector3
)

func benchInputs(b *testing.B) (geom.Matrix4x4, geom.Quaternion, geom.Quaternion) {
	b.Helper()
	q1 := geom.QuaternionFromYawPitchRoll(0.3, 0.2, 0.1)
	q2 := geom.QuaternionFromYawPitchRoll(1.3, -0.4, 0.7)
	m, err := geom.SRTMatrix(geom.NewVector3(1, 2, 3), q1, geom.NewVector3(2, 2, 2))
	if err != nil {
		b.Fatal(err)
	}
	return m, q1, q2
}

func BenchmarkMultiply(b *testing.B) {
	b.ReportAllocs()
	m, _, _ := benchInputs(b)
	b.Run("value", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			sinkMatrix = m.Multiply(m)
		}
	})
	b.Run("set", func(b *testing.B) {
		var out geom.Matrix4x4
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			out.SetMultiply(&m, &m)
		}
		sinkMatrix = out
	})
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	m, _, _ := benchInputs(b)
	var out geom.Matrix4x4
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := out.SetInverse(&m); err != nil {
			b.Fatal(err)
		}
	}
	sinkMatrix = out
}

func BenchmarkDecompose(b *testing.B) {
	b.ReportAllocs()
	m, _, _ := benchInputs(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s, q, _, err := m.Decompose()
		if err != nil {
			b.Fatal(err)
		}
		sinkVec3, sinkQuat = s, q
	}
}

func BenchmarkQuaternionFromMatrix(b *testing.B) {
	b.ReportAllocs()
	m, _, _ := benchInputs(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkQuat = geom.QuaternionFromMatrix(m)
	}
}

func BenchmarkSlerp(b *testing.B) {
	b.ReportAllocs()
	_, q1, q2 := benchInputs(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q, err := q1.Slerp(q2, 0.37)
		if err != nil {
			b.Fatal(err)
		}
		sinkQuat = q
	}
}

func BenchmarkNlerp(b *testing.B) {
	b.ReportAllocs()
	_, q1, q2 := benchInputs(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q, err := q1.Nlerp(q2, 0.37)
		if err != nil {
			b.Fatal(err)
		}
		sinkQuat = q
	}
}

func BenchmarkVector3Rotate(b *testing.B) {
	b.ReportAllocs()
	_, q, _ := benchInputs(b)
	v := geom.NewVector3(1, 2, 3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := v.Rotate(q)
		if err != nil {
			b.Fatal(err)
		}
		sinkVec3 = r
	}
}
