package perfecttable_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/theflywheel/hashy"
	"github.com/theflywheel/hashy/perfecttable"
)

func TestStatSlots(t *testing.T) {
	requireT := require.New(t)

	expected := map[perfecttable.Stat]int{
		perfecttable.Tackles:         0,
		perfecttable.Weight:          1,
		perfecttable.WeakFootAbility: 2,
		perfecttable.GamesPlayed:     3,
		perfecttable.Goals:           4,
		perfecttable.StarSkill:       6,
		perfecttable.Assists:         8,
		perfecttable.Interceptions:   11,
		perfecttable.Height:          12,
	}

	stats := perfecttable.Stats()
	requireT.Len(stats, len(expected))

	seen := map[int]perfecttable.Stat{}
	for _, s := range stats {
		slot := s.Slot()
		requireT.Equal(expected[s], slot, s.String())

		other, exists := seen[slot]
		requireT.False(exists, "%s and %s share slot %d", s, other, slot)
		seen[slot] = s
	}

	for _, dead := range []int{5, 7, 9, 10} {
		_, exists := seen[dead]
		requireT.False(exists, "slot %d must be unreachable", dead)
	}
}

func TestParseStat(t *testing.T) {
	requireT := require.New(t)

	for _, s := range perfecttable.Stats() {
		parsed, err := perfecttable.ParseStat(s.String())
		requireT.NoError(err)
		requireT.Equal(s, parsed)
	}

	_, err := perfecttable.ParseStat("Red Cards")
	requireT.True(errors.Is(err, hashy.ErrInvalidKey))
	requireT.Equal("Stat(42)", perfecttable.Stat(42).String())
}

func TestSetGet(t *testing.T) {
	requireT := require.New(t)

	table := perfecttable.New[int]()
	for i, s := range perfecttable.Stats() {
		requireT.NoError(table.Set(s.String(), i+1))
	}
	requireT.Equal(9, table.Len())
	requireT.False(table.IsFull())

	for i, s := range perfecttable.Stats() {
		v, err := table.Get(s.String())
		requireT.NoError(err)
		requireT.Equal(i+1, v)

		v, err = table.GetStat(s)
		requireT.NoError(err)
		requireT.Equal(i+1, v)
	}

	requireT.NoError(table.SetStat(perfecttable.Goals, 100))
	v, err := table.Get("Goals")
	requireT.NoError(err)
	requireT.Equal(100, v)
	requireT.Equal(9, table.Len())
}

func TestRejectsForeignKeys(t *testing.T) {
	testCases := []struct {
		name string
		key  string
	}{
		{"Empty", ""},
		{"Dead_Slot", "Assist"},
		{"Lowercase_Domain_Key", "goals"},
		{"Same_Slot_As_Weight", "Foo"},
		{"Same_Slot_As_Goals", "Grass"},
		{"Same_Slot_As_Tackles", "Taxes!!"},
		{"Same_Slot_As_Games_Played", "Heights"},
		{"Non_ASCII", "Été"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			requireT := require.New(t)

			table := perfecttable.New[int]()
			table.Reset(7)

			requireT.True(errors.Is(table.Set(tc.key, 1), hashy.ErrInvalidKey))
			_, err := table.Get(tc.key)
			requireT.True(errors.Is(err, hashy.ErrInvalidKey))
			requireT.True(errors.Is(table.Delete(tc.key), hashy.ErrInvalidKey))
			requireT.False(table.Contains(tc.key))

			requireT.Equal(9, table.Len())
			for _, v := range table.Values() {
				requireT.Equal(7, v)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	requireT := require.New(t)

	table := perfecttable.New[int]()
	requireT.True(table.IsEmpty())

	requireT.NoError(table.SetStat(perfecttable.Assists, 3))
	requireT.False(table.IsEmpty())
	requireT.True(table.Contains("Assists"))

	requireT.NoError(table.Delete("Assists"))
	requireT.True(table.IsEmpty())

	_, err := table.Get("Assists")
	requireT.True(errors.Is(err, hashy.ErrNotFound))

	err = table.Delete("Assists")
	requireT.True(errors.Is(err, hashy.ErrNotFound))
	requireT.Equal(0, table.Len())

	// The slot is reused after deletion.
	requireT.NoError(table.SetStat(perfecttable.Assists, 4))
	v, err := table.GetStat(perfecttable.Assists)
	requireT.NoError(err)
	requireT.Equal(4, v)
	requireT.Equal(1, table.Len())
}

func TestKeysInSlotOrder(t *testing.T) {
	requireT := require.New(t)

	var table perfecttable.Table[float64]
	requireT.NoError(table.SetStat(perfecttable.Height, 1.85))
	requireT.NoError(table.SetStat(perfecttable.Tackles, 12))
	requireT.NoError(table.SetStat(perfecttable.StarSkill, 4))

	keys := table.Keys()
	requireT.Equal([]string{"Tackles", "Star Skill", "Height"}, keys)
	requireT.Equal([]float64{12, 4, 1.85}, table.Values())
	requireT.Equal("(Tackles,12)\n(Star Skill,4)\n(Height,1.85)\n", table.String())

	requireT.NoError(table.Delete("Tackles"))
	requireT.Equal([]string{"Tackles", "Star Skill", "Height"}, keys)
	requireT.Equal(13, table.Capacity())
}

func TestReset(t *testing.T) {
	requireT := require.New(t)

	table := perfecttable.New[int]()
	requireT.NoError(table.SetStat(perfecttable.Goals, 5))

	table.Reset(0)
	requireT.Equal(9, table.Len())
	for _, s := range perfecttable.Stats() {
		v, err := table.GetStat(s)
		requireT.NoError(err)
		requireT.Equal(0, v)
	}
}

func TestJSONSnapshot(t *testing.T) {
	requireT := require.New(t)

	table := perfecttable.New[int]()
	requireT.NoError(table.SetStat(perfecttable.Goals, 2))
	requireT.NoError(table.SetStat(perfecttable.GamesPlayed, 10))

	data, err := table.MarshalJSON()
	requireT.NoError(err)
	requireT.JSONEq(`{"Goals":2,"Games Played":10}`, string(data))

	restored := perfecttable.New[int]()
	requireT.NoError(restored.UnmarshalJSON(data))
	requireT.Equal(table.Keys(), restored.Keys())
	requireT.Equal(table.Values(), restored.Values())

	err = restored.UnmarshalJSON([]byte(`{"Weight":80,"Red Cards":1}`))
	requireT.True(errors.Is(err, hashy.ErrInvalidKey))
	requireT.False(restored.Contains("Weight"))
	requireT.Equal(2, restored.Len())
}
