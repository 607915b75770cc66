package token

import "fmt"

// ParseTeam parses the String form of a Team.
func ParseTeam(s string) (Team, error) {
	for _, t := range []Team{TeamA, TeamB} {
		if t.String() == s {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown team %q", s)
}

// ParseRole parses the String form of a Role.
func ParseRole(s string) (Role, error) {
	for _, r := range []Role{Blocker, Pivot, Jammer} {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown skater role %q", s)
}

// ParseOfficialRole parses the String form of an OfficialRole.
func ParseOfficialRole(s string) (OfficialRole, error) {
	for _, r := range []OfficialRole{InsidePackReferee, OutsidePackReferee, JammerReferee} {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown official role %q", s)
}
