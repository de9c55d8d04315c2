// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.
package guid

import (
	"os/user"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func currentIDs(t *testing.T) (uid, gid int, username string) {
	t.Helper()
	u, err := user.Current()
	require.NoError(t, err)

	uid, err = strconv.Atoi(u.Uid)
	require.NoError(t, err)
	gid, err = strconv.Atoi(u.Gid)
	require.NoError(t, err)
	return uid, gid, u.Username
}

func TestUIDRoundTrip(t *testing.T) {
	uid, _, username := currentIDs(t)

	name, err := NameFromUID(uid)
	assert.NoError(t, err)
	assert.Equal(t, username, name)

	back, err := UIDFromName(name)
	assert.NoError(t, err)
	assert.Equal(t, uid, back)
}

func TestGIDRoundTrip(t *testing.T) {
	_, gid, _ := currentIDs(t)

	name, err := NameFromGID(gid)
	assert.NoError(t, err)

	back, err := GIDFromName(name)
	assert.NoError(t, err)
	assert.Equal(t, gid, back)
}

func TestGroupsOf(t *testing.T) {
	uid, gid, username := currentIDs(t)

	groups, err := GroupsOf(username)
	assert.NoError(t, err)
	assert.NotEmpty(t, groups)

	primary, err := NameFromGID(gid)
	assert.NoError(t, err)
	assert.Contains(t, groups, primary)

	byUID, err := GroupsOfUID(uid)
	assert.NoError(t, err)
	assert.ElementsMatch(t, groups, byUID)
}

func TestUnknownLookups(t *testing.T) {
	_, err := NameFromUID(-42)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "-42")

	_, err = UIDFromName("no-such-user-files-stuff")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-user-files-stuff")

	_, err = GIDFromName("no-such-group-files-stuff")
	assert.Error(t, err)

	_, err = GroupsOf("no-such-user-files-stuff")
	assert.Error(t, err)
}
