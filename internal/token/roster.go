package token

// Lineup returns the skaters fielded at the start of a jam: per team a
// jammer, a pivot and three blockers.
func Lineup() []Kind {
	var kinds []Kind
	for _, team := range []Team{TeamA, TeamB} {
		kinds = append(kinds,
			Skater{Team: team, Role: Jammer},
			Skater{Team: team, Role: Pivot},
			Skater{Team: team, Role: Blocker},
			Skater{Team: team, Role: Blocker},
			Skater{Team: team, Role: Blocker},
		)
	}
	return kinds
}

// Crew returns the default set of officials.
func Crew() []Kind {
	return []Kind{
		Official{Role: JammerReferee},
		Official{Role: JammerReferee},
		Official{Role: InsidePackReferee},
		Official{Role: InsidePackReferee},
		Official{Role: OutsidePackReferee},
		Official{Role: OutsidePackReferee},
		Official{Role: OutsidePackReferee},
	}
}
