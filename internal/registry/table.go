package registry

// The shipped tool set. Adding a new alternative is a data change here, not
// a code change anywhere else.

func init() {
	mustRegister(&Rule{
		OldName:        "find",
		NewName:        "fd",
		FurtherReading: "https://github.com/sharkdp/fd",
		Notes:          "fd skips hidden files and .gitignore entries by default; use -H and -I to include them.",
		FlagMappings: []FlagMapping{
			{
				OldFlag:     "-name",
				NewFlag:     "<name>",
				Comment:     "The name argument does not have a flag, e.g., `fd my_needle.txt`.",
				ConsumeNext: 1,
			},
			{
				OldFlag:     "-depth",
				NewFlag:     "--exact-depth",
				ConsumeNext: 1,
			},
			{
				OldFlag:     "-path",
				NewFlag:     "-p",
				Comment:     "Causes a match against the full path, rather than file name.",
				ConsumeNext: 1,
			},
			{
				OldFlag: "-mount",
				NewFlag: "--mount",
			},
			{
				OldFlag: "-empty",
				NewFlag: "-t empty",
			},
			{
				OldFlag: "-x",
				NewFlag: "--xdev",
			},
			{
				OldFlag:     "-maxdepth",
				NewFlag:     "-d",
				ConsumeNext: 1,
			},
			{
				OldFlag: "-print0",
				NewFlag: "-0",
			},
			{
				OldFlag:     "-mindepth",
				NewFlag:     "--min-depth",
				ConsumeNext: 1,
			},
			{
				OldFlag: "-L",
				NewFlag: "-L",
			},
			{
				OldFlag: "-ls",
				NewFlag: "-l",
				Comment: "This is the closest approximation in spirit. Technically, `-ls` is not identical to `-l` (see alternative below).",
			},
			{
				OldFlag: "-ls",
				NewFlag: "-x ls -dgils",
				Comment: "(Execute `ls -dgils` for each result). This is the most precise mapping of find's `-ls` for fd, giving output that is identical to `-ls`. See alternative mapping above for an argument that is closer in spirit.",
			},
			{
				OldFlag:     "-exec",
				NewFlag:     "-x",
				Comment:     "Where {} expands to path; {/} basename; {//} parent directory; {.} path without file extension; {/.} basename without file extension.",
				ConsumeNext: 1,
			},
			{
				OldFlag:     "-type",
				NewFlag:     "-t",
				Comment:     "f, file; d, directory; l, symlink; x, executable; e, empty; s, socket; p, pipe.",
				ConsumeNext: 1,
			},
		},
	})

	mustRegister(&Rule{
		OldName:        "grep",
		NewName:        "rg",
		FurtherReading: "https://github.com/BurntSushi/ripgrep",
		Notes:          "rg searches the current directory recursively by default and respects .gitignore.",
		FlagMappings: []FlagMapping{
			{
				OldFlag: "-r",
				NewFlag: "(no flag needed)",
				Comment: "Recursive search is the default.",
			},
			{
				OldFlag: "-R",
				NewFlag: "(no flag needed)",
				Comment: "Recursive search is the default; add -L to follow symlinks.",
			},
			{
				OldFlag: "-i",
				NewFlag: "-i",
			},
			{
				OldFlag: "-n",
				NewFlag: "(no flag needed)",
				Comment: "Line numbers are shown by default when printing to a terminal.",
			},
			{
				OldFlag: "-l",
				NewFlag: "-l",
			},
			{
				OldFlag: "-v",
				NewFlag: "-v",
			},
			{
				OldFlag:     "-e",
				NewFlag:     "-e",
				ConsumeNext: 1,
			},
			{
				OldFlag: "--include=*",
				NewFlag: "-g",
				Comment: "Takes a glob, e.g. `rg -g '*.py' <pattern>`.",
				Mode:    MatchGlob,
			},
			{
				OldFlag:     "--include",
				NewFlag:     "-g",
				Comment:     "Takes a glob, e.g. `rg -g '*.py' <pattern>`.",
				ConsumeNext: 1,
			},
		},
	})

	mustRegister(&Rule{
		OldName:        "ls",
		NewName:        "eza",
		FurtherReading: "https://github.com/eza-community/eza",
		Notes:          "eza colorizes output and understands git status; try `eza -l --git`.",
		FlagMappings: []FlagMapping{
			{
				OldFlag: "-l",
				NewFlag: "-l",
			},
			{
				OldFlag: "-a",
				NewFlag: "-a",
			},
			{
				OldFlag: "-t",
				NewFlag: "--sort=modified",
				Comment: "Newest last; add -r to put the newest first like `ls -t`.",
			},
			{
				OldFlag: "-R",
				NewFlag: "--tree",
				Comment: "Recursion as a tree; use -R for a flat recursive listing.",
			},
			{
				OldFlag: "-h",
				NewFlag: "(no flag needed)",
				Comment: "Sizes are human-readable by default.",
			},
		},
	})

	mustRegister(&Rule{
		OldName:        "cat",
		NewName:        "bat",
		FurtherReading: "https://github.com/sharkdp/bat",
		Notes:          "bat adds syntax highlighting and paging; use `bat -p` for plain cat-like output.",
		FlagMappings: []FlagMapping{
			{
				OldFlag: "-n",
				NewFlag: "(no flag needed)",
				Comment: "Line numbers are part of the default decorated output.",
			},
			{
				OldFlag: "-A",
				NewFlag: "--show-all",
			},
		},
	})

	mustRegister(&Rule{
		OldName:        "du",
		NewName:        "dust",
		FurtherReading: "https://github.com/bootandy/dust",
		Notes:          "dust shows a sorted usage tree by default; no pipe through `sort` needed.",
		FlagMappings: []FlagMapping{
			{
				OldFlag: "-h",
				NewFlag: "(no flag needed)",
				Comment: "Sizes are human-readable by default.",
			},
			{
				OldFlag:     "--max-depth",
				NewFlag:     "-d",
				ConsumeNext: 1,
			},
			{
				OldFlag: "--max-depth=*",
				NewFlag: "-d",
				Mode:    MatchGlob,
			},
			{
				OldFlag: "-s",
				NewFlag: "-d 0",
				Comment: "Summarize: limit the tree to the top-level entry only.",
			},
		},
	})
}
