package model

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func loadedState(products ...Product) CartState {
	s := NewCartState()
	s.FetchStart()
	s.FetchSucceeded(products)
	return s
}

func laptop() Product {
	return Product{ID: 1, Name: "Laptop", Price: decimal.NewFromInt(100), AvailableCount: 20}
}

func TestNewCartState(t *testing.T) {
	s := NewCartState()

	assert.Empty(t, s.Lines)
	assert.False(t, s.Loading)
	assert.Nil(t, s.Error)
	assertDecimal(t, "0", s.RunningTotal)
}

func TestCartState_FetchLifecycle(t *testing.T) {
	t.Run("fetch start sets loading and clears error", func(t *testing.T) {
		s := NewCartState()
		s.FetchFailed("boom")
		s.FetchStart()

		assert.True(t, s.Loading)
		assert.Nil(t, s.Error)
	})

	t.Run("fetch succeeded maps products to empty lines", func(t *testing.T) {
		s := NewCartState()
		s.FetchStart()
		s.RunningTotal = decimal.NewFromInt(42)
		s.FetchSucceeded(DefaultCatalog())

		assert.False(t, s.Loading)
		assert.Nil(t, s.Error)
		require.Len(t, s.Lines, len(DefaultCatalog()))
		for i, l := range s.Lines {
			assert.Equal(t, DefaultCatalog()[i].ID, l.ID)
			assert.Equal(t, 0, l.OrderedQuantity)
			assertDecimal(t, "0", l.Total)
		}
		assertDecimal(t, "0", s.RunningTotal)
	})

	t.Run("fetch succeeded keeps first occurrence of duplicate ids", func(t *testing.T) {
		dup := laptop()
		dup.Name = "Other"
		s := loadedState(laptop(), dup)

		require.Len(t, s.Lines, 1)
		assert.Equal(t, "Laptop", s.Lines[0].Name)
	})

	t.Run("fetch failed with message", func(t *testing.T) {
		s := NewCartState()
		s.FetchStart()
		s.FetchFailed("network down")

		assert.False(t, s.Loading)
		require.NotNil(t, s.Error)
		assert.Equal(t, "network down", *s.Error)
	})

	t.Run("fetch failed without message uses default", func(t *testing.T) {
		s := NewCartState()
		s.FetchStart()
		s.FetchFailed("")

		require.NotNil(t, s.Error)
		assert.Equal(t, "Some thing went wrong", *s.Error)
	})
}

func TestCartState_Increment(t *testing.T) {
	t.Run("five increments", func(t *testing.T) {
		s := loadedState(laptop())
		for i := 0; i < 5; i++ {
			assert.True(t, s.Increment(1))
		}

		l, ok := s.Line(1)
		require.True(t, ok)
		assert.Equal(t, 5, l.OrderedQuantity)
		assert.Equal(t, 15, l.AvailableCount)
		assertDecimal(t, "500", l.Total)
		assertDecimal(t, "500", s.RunningTotal)
		assertDecimal(t, "0", Discount(s))
		assertDecimal(t, "500", TotalWithDiscount(s))
	})

	t.Run("twelve increments cross the discount threshold", func(t *testing.T) {
		s := loadedState(laptop())
		for i := 0; i < 12; i++ {
			s.Increment(1)
		}

		l, _ := s.Line(1)
		assert.Equal(t, 12, l.OrderedQuantity)
		assertDecimal(t, "1200", l.Total)
		assertDecimal(t, "1200", s.RunningTotal)
		assertDecimal(t, "120", Discount(s))
		assertDecimal(t, "1080", TotalWithDiscount(s))
	})

	t.Run("out of stock is a no-op", func(t *testing.T) {
		p := laptop()
		p.AvailableCount = 0
		s := loadedState(p)
		before := s.Clone()

		assert.False(t, s.Increment(1))
		assert.Equal(t, before, s)
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		s := loadedState(laptop())
		before := s.Clone()

		assert.False(t, s.Increment(99))
		assert.Equal(t, before, s)
	})

	t.Run("stops at available stock", func(t *testing.T) {
		p := laptop()
		p.AvailableCount = 2
		s := loadedState(p)

		assert.True(t, s.Increment(1))
		assert.True(t, s.Increment(1))
		assert.False(t, s.Increment(1))

		l, _ := s.Line(1)
		assert.Equal(t, 0, l.AvailableCount)
		assert.Equal(t, 2, l.OrderedQuantity)
	})
}

func TestCartState_Decrement(t *testing.T) {
	t.Run("zero quantity is a no-op", func(t *testing.T) {
		s := loadedState(laptop())
		before, err := json.Marshal(s)
		require.NoError(t, err)

		assert.False(t, s.Decrement(1))

		after, err := json.Marshal(s)
		require.NoError(t, err)
		assert.Equal(t, string(before), string(after))
	})

	t.Run("returns stock", func(t *testing.T) {
		s := loadedState(laptop())
		s.Increment(1)
		s.Increment(1)

		assert.True(t, s.Decrement(1))

		l, _ := s.Line(1)
		assert.Equal(t, 1, l.OrderedQuantity)
		assert.Equal(t, 19, l.AvailableCount)
		assertDecimal(t, "100", l.Total)
		assertDecimal(t, "100", s.RunningTotal)
	})

	t.Run("unknown product is a no-op", func(t *testing.T) {
		s := loadedState(laptop())
		s.Increment(1)
		before := s.Clone()

		assert.False(t, s.Decrement(7))
		assert.Equal(t, before, s)
	})
}

func TestCartState_CountersDoNotOverflow(t *testing.T) {
	t.Run("decrement with saturated stock", func(t *testing.T) {
		s := loadedState(laptop())
		s.Lines[0].AvailableCount = math.MaxInt
		s.Lines[0].OrderedQuantity = 1
		s.Lines[0].Total = decimal.NewFromInt(100)
		s.RunningTotal = decimal.NewFromInt(100)

		assert.False(t, s.Decrement(1))
		l, _ := s.Line(1)
		assert.Equal(t, math.MaxInt, l.AvailableCount)
		assert.Equal(t, 1, l.OrderedQuantity)
	})

	t.Run("increment with saturated quantity", func(t *testing.T) {
		s := loadedState(laptop())
		s.Lines[0].OrderedQuantity = math.MaxInt

		assert.False(t, s.Increment(1))
		l, _ := s.Line(1)
		assert.Equal(t, math.MaxInt, l.OrderedQuantity)
		assert.Equal(t, 20, l.AvailableCount)
	})
}

func TestCartState_Reconcile(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CartState)
		wantErr string
	}{
		{
			name:   "fresh cart",
			mutate: func(*CartState) {},
		},
		{
			name:   "units moved into the order",
			mutate: func(s *CartState) { s.Increment(1); s.Increment(1) },
		},
		{
			name:    "inflated stock",
			mutate:  func(s *CartState) { s.Lines[0].AvailableCount = 1000000 },
			wantErr: "catalog stock",
		},
		{
			name:    "ordered more than stock",
			mutate:  func(s *CartState) { s.Lines[0].AvailableCount = 0; s.Lines[0].OrderedQuantity = 21 },
			wantErr: "catalog stock",
		},
		{
			name:    "saturated stock",
			mutate:  func(s *CartState) { s.Lines[0].AvailableCount = math.MaxInt; s.Lines[0].OrderedQuantity = 1 },
			wantErr: "catalog stock",
		},
		{
			name:    "price changed",
			mutate:  func(s *CartState) { s.Lines[0].Price = decimal.Zero },
			wantErr: "catalog price",
		},
		{
			name: "unknown product",
			mutate: func(s *CartState) {
				s.Lines = append(s.Lines, CartLine{Product: Product{ID: 9, Name: "Desk", Price: decimal.NewFromInt(1)}, Total: decimal.Zero})
			},
			wantErr: "not in catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := loadedState(laptop())
			tt.mutate(&s)

			err := s.Reconcile([]Product{laptop()})
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCartState_Dispatch(t *testing.T) {
	s := loadedState(laptop())

	assert.True(t, s.Dispatch(Increment(1)))
	assert.True(t, s.Dispatch(Decrement(1)))
	assert.False(t, s.Dispatch(Decrement(1)))
	assert.False(t, s.Dispatch(Action{Type: "reset", ProductID: 1}))
}

func TestCartState_RandomSequencesKeepInvariants(t *testing.T) {
	products := []Product{
		laptop(),
		{ID: 2, Name: "Phone", Price: decimal.RequireFromString("249.99"), AvailableCount: 3},
		{ID: 3, Name: "Cable", Price: decimal.RequireFromString("0.5"), AvailableCount: 0},
	}
	conserved := map[int64]int{1: 20, 2: 3, 3: 0}

	rng := rand.New(rand.NewSource(7))
	s := loadedState(products...)

	for i := 0; i < 2000; i++ {
		id := int64(rng.Intn(4) + 1)
		if rng.Intn(2) == 0 {
			s.Increment(id)
		} else {
			s.Decrement(id)
		}

		for _, l := range s.Lines {
			assert.GreaterOrEqual(t, l.OrderedQuantity, 0)
			assert.GreaterOrEqual(t, l.AvailableCount, 0)
			assert.Equal(t, conserved[l.ID], l.AvailableCount+l.OrderedQuantity)
			assert.True(t, l.Total.Equal(l.Price.Mul(decimal.NewFromInt(int64(l.OrderedQuantity)))))
		}
		require.True(t, s.RunningTotal.Equal(LinesTotal(s)), "step %d", i)
	}
	assert.NoError(t, s.Validate())
}

func TestCartState_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CartState)
		wantErr bool
	}{
		{
			name:   "consistent state",
			mutate: func(s *CartState) { s.Increment(1) },
		},
		{
			name:    "negative ordered quantity",
			mutate:  func(s *CartState) { s.Lines[0].OrderedQuantity = -1; s.Lines[0].Total = decimal.NewFromInt(-100); s.RunningTotal = decimal.NewFromInt(-100) },
			wantErr: true,
		},
		{
			name:    "line total mismatch",
			mutate:  func(s *CartState) { s.Increment(1); s.Lines[0].Total = decimal.NewFromInt(1) },
			wantErr: true,
		},
		{
			name:    "running total mismatch",
			mutate:  func(s *CartState) { s.Increment(1); s.RunningTotal = decimal.NewFromInt(5) },
			wantErr: true,
		},
		{
			name:    "duplicate line",
			mutate:  func(s *CartState) { s.Lines = append(s.Lines, s.Lines[0]) },
			wantErr: true,
		},
		{
			name:    "negative stock",
			mutate:  func(s *CartState) { s.Lines[0].AvailableCount = -3 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := loadedState(laptop())
			tt.mutate(&s)
			if tt.wantErr {
				assert.Error(t, s.Validate())
			} else {
				assert.NoError(t, s.Validate())
			}
		})
	}
}

func TestCartState_JSON(t *testing.T) {
	s := loadedState(laptop())
	s.Increment(1)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"lines": [{"id": 1, "name": "Laptop", "price": 100, "availableCount": 19, "orderedQuantity": 1, "total": 100}],
		"loading": false,
		"error": null,
		"runningTotal": 100
	}`, string(data))

	var decoded CartState
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.NoError(t, decoded.Validate())
	assertDecimal(t, "100", decoded.RunningTotal)
}

func TestDecimalsEncodeAsNumbers(t *testing.T) {
	assert.True(t, decimal.MarshalJSONWithoutQuotes)

	data, err := json.Marshal(Summarize(loadedState(laptop())))
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"0"`)

	price, err := json.Marshal(decimal.RequireFromString("49.99"))
	require.NoError(t, err)
	assert.Equal(t, "49.99", string(price))
}
