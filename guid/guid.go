// Copyright © 2021 Optable Technologies Inc. All rights reserved.
// See LICENSE for details.

// Package guid maps numeric user and group ids to names and back.
package guid

import (
	"fmt"
	"os/user"
	"strconv"
)

// NameFromUID returns the username of uid.
func NameFromUID(uid int) (string, error) {
	u, err := user.LookupId(strconv.Itoa(uid))
	if err != nil {
		return "", fmt.Errorf("uid %d: %w", uid, err)
	}
	return u.Username, nil
}

// UIDFromName returns the uid of the given username.
func UIDFromName(name string) (int, error) {
	u, err := user.Lookup(name)
	if err != nil {
		return 0, fmt.Errorf("user %q: %w", name, err)
	}

	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return 0, fmt.Errorf("user %q has non-numeric uid %q: %w", name, u.Uid, err)
	}
	return uid, nil
}

// NameFromGID returns the group name of gid.
func NameFromGID(gid int) (string, error) {
	g, err := user.LookupGroupId(strconv.Itoa(gid))
	if err != nil {
		return "", fmt.Errorf("gid %d: %w", gid, err)
	}
	return g.Name, nil
}

// GIDFromName returns the gid of the given group name.
func GIDFromName(name string) (int, error) {
	g, err := user.LookupGroup(name)
	if err != nil {
		return 0, fmt.Errorf("group %q: %w", name, err)
	}

	gid, err := strconv.Atoi(g.Gid)
	if err != nil {
		return 0, fmt.Errorf("group %q has non-numeric gid %q: %w", name, g.Gid, err)
	}
	return gid, nil
}

// GroupsOf returns the names of the groups the given username belongs
// to.
func GroupsOf(name string) ([]string, error) {
	u, err := user.Lookup(name)
	if err != nil {
		return nil, fmt.Errorf("user %q: %w", name, err)
	}

	gids, err := u.GroupIds()
	if err != nil {
		return nil, fmt.Errorf("groups of %q: %w", name, err)
	}

	groups := make([]string, 0, len(gids))
	for _, gid := range gids {
		g, err := user.LookupGroupId(gid)
		if err != nil {
			// A gid can outlive its group entry, report the raw id.
			groups = append(groups, gid)
			continue
		}
		groups = append(groups, g.Name)
	}
	return groups, nil
}

// GroupsOfUID returns the names of the groups of the user with the
// given uid.
func GroupsOfUID(uid int) ([]string, error) {
	name, err := NameFromUID(uid)
	if err != nil {
		return nil, err
	}
	return GroupsOf(name)
}
