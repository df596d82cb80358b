package soc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSubGroup_ExactMatch(t *testing.T) {
	assert.Equal(t, "15-13", ResolveSubGroup("15-1311"))
	assert.Equal(t, "15-12", ResolveSubGroup("15-1252"))
	assert.Equal(t, "11-10", ResolveSubGroup("11-1021"))
}

func TestResolveSubGroup_RoundsDownToZero(t *testing.T) {
	// "29-11" has no template; rounding the sub-group digit yields "29-10".
	assert.Equal(t, "29-10", ResolveSubGroup("29-1141"))
	assert.Equal(t, "31-10", ResolveSubGroup("31-1131"))
}

func TestResolveSubGroup_MajorGroupCatchAll(t *testing.T) {
	// "15-19" matches nothing exactly and rounds to "15-10", the major
	// group's generic key.
	assert.Equal(t, "15-10", ResolveSubGroup("15-19"))

	// "43-20" is not authored and rounds to itself; the cascade lands on
	// the "43-10" catch-all.
	assert.Equal(t, "43-10", ResolveSubGroup("43-2011"))
}

func TestResolveSubGroup_ResidualCatchAll(t *testing.T) {
	// Drop "33-10" from consideration: "33-9021" resolves via rounding to
	// "33-90" before the "-10" probe ever runs.
	assert.Equal(t, "33-90", ResolveSubGroup("33-9021"))
}

func TestResolveSubGroup_Unknown(t *testing.T) {
	assert.Equal(t, "", ResolveSubGroup("99-99"))
	assert.Equal(t, "", ResolveSubGroup("99-9999"))
}

func TestResolveSubGroup_ShortInput(t *testing.T) {
	assert.Equal(t, "", ResolveSubGroup(""))
	assert.Equal(t, "", ResolveSubGroup("15"))
	assert.Equal(t, "", ResolveSubGroup("15-1"))
}

func TestResolveSubGroup_PrefersSpecificOverRounded(t *testing.T) {
	// "15-13" exists exactly, so the cascade must not round it down to
	// "15-10".
	assert.Equal(t, "15-13", ResolveSubGroup("15-1321"))
}
