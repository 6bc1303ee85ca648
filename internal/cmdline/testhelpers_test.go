package cmdline

func strp(s string) *string { return &s }

func testRegistry() *Registry {
	return MustRegistry(
		Grammar{
			Keyword:  "find",
			Arg:      Optional,
			Switches: []SwitchDefinition{{Name: "tag", Level: Optional, Alias: "t"}},
		},
		Grammar{
			Keyword:         "open",
			Arg:             Required,
			EmptyArgMessage: "Which record should I open?",
			Switches: []SwitchDefinition{
				{Name: "verbose", Level: None, Alias: "v"},
				{Name: "name", Level: Optional},
			},
		},
		Grammar{
			Keyword: "back",
			Arg:     None,
		},
		Grammar{
			Keyword: "edit",
			Arg:     None,
			Switches: []SwitchDefinition{
				{Name: "name", Level: Required},
				{Name: "age", Level: Optional},
				{Name: "quiet", Level: None, Alias: "q"},
			},
		},
	)
}
