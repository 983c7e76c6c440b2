package tile

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPacksMaterialAndSeed(t *testing.T) {
	b := New(Grass, 3)
	assert.Equal(t, Grass, b.Material())
	assert.Equal(t, uint8(3), b.Seed())

	b.SetMaterial(Dirt)
	assert.Equal(t, Dirt, b.Material())
	assert.Equal(t, uint8(3), b.Seed(), "seed must survive a material change")

	b.SetSeed(1)
	assert.Equal(t, Dirt, b.Material())
	assert.Equal(t, uint8(1), b.Seed())
}

func TestSeedWrapsModuloFour(t *testing.T) {
	for seed := 0; seed < 16; seed++ {
		b := New(Water, uint8(seed))
		if b.Seed() != uint8(seed%4) {
			t.Fatalf("seed %d packed as %d", seed, b.Seed())
		}
		if b.Material() != Water {
			t.Fatalf("seed %d clobbered material: %v", seed, b.Material())
		}
	}
}

func TestZeroBlockIsAir(t *testing.T) {
	var b Block
	assert.Equal(t, Air, b.Material())
	assert.Equal(t, uint8(0), b.Seed())
	assert.True(t, b.IsEmpty())
}

func TestEveryMaterialHasTags(t *testing.T) {
	for _, m := range Materials() {
		assert.NotPanics(t, func() { _ = TagsOf(m) }, "material %v", m)
	}
	assert.Panics(t, func() { _ = TagsOf(Material(MaterialCount)) })
}

func TestPredicates(t *testing.T) {
	cases := []struct {
		m    Material
		want Tags
	}{
		{Air, Empty},
		{Bedrock, Static | Divine},
		{Stone, Static},
		{Water, Liquid},
		{Magma, Liquid | Hot},
		{Ice, Static | Cold},
		{Clay, Sticky},
		{Fire, Empty | Hot},
		{Dirt, NoTags},
	}
	for _, tc := range cases {
		b := New(tc.m, 0)
		assert.Equal(t, tc.want, b.Tags(), tc.m.String())
		assert.Equal(t, tc.want.Has(Static), b.IsStatic(), tc.m.String())
		assert.Equal(t, tc.want.Has(Liquid), b.IsLiquid(), tc.m.String())
		assert.Equal(t, tc.want.Has(Hot), b.IsHot(), tc.m.String())
		assert.Equal(t, tc.want.Has(Cold), b.IsCold(), tc.m.String())
		assert.Equal(t, tc.want.Has(Empty), b.IsEmpty(), tc.m.String())
		assert.Equal(t, tc.want.Has(Divine), b.IsDivine(), tc.m.String())
		assert.Equal(t, tc.want.Has(Sticky), b.IsSticky(), tc.m.String())
	}
}

func TestTagsString(t *testing.T) {
	assert.Equal(t, "none", NoTags.String())
	assert.Equal(t, "static|divine", (Static | Divine).String())
	assert.True(t, (Static | Hot).Has(Hot))
	assert.False(t, Static.Has(Static|Hot))
	assert.Equal(t, Static, (Static | Hot).Without(Hot))
}

func TestParseMaterial(t *testing.T) {
	m, err := ParseMaterial("limestone")
	require.NoError(t, err)
	assert.Equal(t, Limestone, m)

	m, err = ParseMaterial("rock")
	require.NoError(t, err)
	assert.Equal(t, Stone, m)

	_, err = ParseMaterial("unobtainium")
	var unknown *UnknownMaterialError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "unobtainium", unknown.Name)

	for _, m := range Materials() {
		parsed, err := ParseMaterial(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
	}
}

func TestFromByteRejectsUndefinedMaterials(t *testing.T) {
	b, err := FromByte(New(Fire, 2).Byte())
	require.NoError(t, err)
	assert.Equal(t, Fire, b.Material())
	assert.Equal(t, uint8(2), b.Seed())

	_, err = FromByte(0x3f)
	var invalid *InvalidMaterialError
	assert.True(t, errors.As(err, &invalid))

	_, err = MaterialFromByte(uint8(MaterialCount))
	assert.Error(t, err)
}
