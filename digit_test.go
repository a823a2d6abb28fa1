package digitview_test

import (
	"fmt"
	"testing"

	"github.com/calebcase/digitview"
	"github.com/stretchr/testify/require"
)

func TestDigitSet(t *testing.T) {
	type TC struct {
		name   string
		value  int64
		radix  uint64
		index  int
		digit  int64
		expect int64
	}

	tcs := []TC{
		{"replace high", 12345, 10, 0, 9, 92345},
		{"replace low", 12345, 10, 4, 0, 12340},
		{"replace middle", 12345, 10, 2, 7, 12745},
		{"same digit", 12345, 10, 2, 3, 12345},
		{"negative high to zero", -12345, 10, 0, 0, -2345},
		{"negative keeps sign", -12345, 10, 4, 9, -12349},
		{"zero gains digit", 0, 10, 0, 3, 3},
		{"modulo radix", 12345, 10, 0, 13, 32345},
		{"hex", 0x12345, 16, 2, 0xf, 0x12f45},
		{"binary", 0b1010, 2, 0, 0, 0b0010},
		{"all zero magnitude loses sign", -5, 10, 0, 0, 0},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			value := tc.value

			v, err := digitview.New(&value, tc.radix)
			require.NoError(t, err)

			v.At(tc.index).Set(tc.digit)
			require.Equal(t, tc.expect, value)
		})
	}
}

func TestWriteIsolation(t *testing.T) {
	n := int64(987654321)

	v, err := digitview.New(&n, 10)
	require.NoError(t, err)

	before := v.Digits()
	v.At(3).Set(0)
	after := v.Digits()

	for i := range before {
		if i == 3 {
			require.EqualValues(t, 0, after[i])
		} else {
			require.Equal(t, before[i], after[i])
		}
	}
}

func TestSignPreservation(t *testing.T) {
	n := int32(-9042)

	v, err := digitview.New(&n, 10)
	require.NoError(t, err)

	v.At(0).Set(1)
	require.Equal(t, int32(-1042), n)

	v.At(2).Set(0)
	require.Equal(t, int32(-1002), n)

	// Zeroing the whole magnitude drops the sign. There is no
	// negative zero, so it cannot come back.
	for i := 0; i < v.Size(); i++ {
		v.At(i).Set(0)
	}
	require.Equal(t, int32(0), n)

	v.At(3).Set(5)
	require.Equal(t, int32(5), n)
}

func TestIncDec(t *testing.T) {
	t.Run("pre and post", func(t *testing.T) {
		n := 12345

		v, err := digitview.New(&n, 10)
		require.NoError(t, err)

		d := v.At(4)

		require.Equal(t, 6, d.Inc())
		require.Equal(t, 12346, n)

		require.Equal(t, 6, d.PostInc())
		require.Equal(t, 12347, n)

		require.Equal(t, 6, d.Dec())
		require.Equal(t, 12346, n)

		require.Equal(t, 6, d.PostDec())
		require.Equal(t, 12345, n)
	})

	t.Run("wrap at radix", func(t *testing.T) {
		n := 92345

		v, err := digitview.New(&n, 10)
		require.NoError(t, err)

		require.Equal(t, 0, v.At(0).Inc())
		require.Equal(t, 2345, n)
	})

	t.Run("borrow below zero", func(t *testing.T) {
		// Decrementing a zero digit borrows from the next higher
		// digit, same as the unsigned wrap in the write rule.
		n := 20

		v, err := digitview.New(&n, 10)
		require.NoError(t, err)

		require.Equal(t, 9, v.At(1).Dec())
		require.Equal(t, 19, n)
	})
}

func TestSwap(t *testing.T) {
	type TC struct {
		name   string
		value  int64
		i, j   int
		expect int64
	}

	tcs := []TC{
		{"1234 ends", 1234, 0, 3, 4231},
		{"negative", -1234, 0, 3, -4231},
		{"same position", 1234, 1, 1, 1234},
		{"adjacent", 1234, 1, 2, 1324},
	}

	for i, tc := range tcs {
		t.Run(fmt.Sprintf("[%d]%s", i, tc.name), func(t *testing.T) {
			value := tc.value

			v, err := digitview.New(&value, 10)
			require.NoError(t, err)

			v.At(tc.i).Swap(v.At(tc.j))
			require.Equal(t, tc.expect, value)
		})
	}
}

func TestEqualLess(t *testing.T) {
	m := 8675309
	c := 8675319

	mv, err := digitview.New(&m, 10)
	require.NoError(t, err)

	cv, err := digitview.NewConst(&c, 10)
	require.NoError(t, err)

	// The numbers differ only in the digit at index 5.
	for i := 0; i < mv.Size(); i++ {
		require.Equal(t, i != 5, mv.At(i).Equal(cv.At(i)))
	}

	require.True(t, mv.At(5).Less(cv.At(5)))
	require.False(t, cv.At(5).Less(mv.At(5).Const()))
	require.False(t, mv.At(0).Less(cv.At(0)))
}

func BenchmarkValue(b *testing.B) {
	value := int64(8675309)

	v, err := digitview.New(&value, 10)
	if err != nil {
		b.Fatalf("%+v", err)
	}

	d := v.At(3)

	var sink int64
	for n := 0; n < b.N; n++ {
		sink += d.Value()
	}
	_ = sink
}

func BenchmarkSet(b *testing.B) {
	value := int64(8675309)

	v, err := digitview.New(&value, 10)
	if err != nil {
		b.Fatalf("%+v", err)
	}

	d := v.At(3)

	for n := 0; n < b.N; n++ {
		d.Set(int64(n % 10))
	}
}
