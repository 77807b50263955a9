package backend

// builtins returns the definitions for the well-known Python package
// managers shipped with the engine.
func builtins() []Definition {
	return []Definition{
		{
			Name:           "pdm",
			DetectionFiles: []string{"pdm.lock"},
			InstallHint:    "curl -sSL https://pdm-project.org/install-pdm.py | python3 -",
			AddCmd:         []string{"pdm", "add"},
			AddDevCmd:      []string{"pdm", "add", "--dev"},
			RemoveCmd:      []string{"pdm", "remove"},
			SyncCmd:        []string{"pdm", "sync"},
			SyncDevCmd:     []string{"pdm", "sync", "--dev"},
			RunCmd:         []string{"pdm", "run"},
			ListCmd:        []string{"pdm", "list"},
			VersionCmd:     []string{"pdm", "--version"},
			CleanFiles:     []string{"pdm.lock", ".pdm-python", "__pypackages__"},
		},
		{
			Name:              "uv",
			DetectionFiles:    []string{"uv.lock", "__pypackages__"},
			DetectionPatterns: []string{"[tool.uv]"},
			InstallHint:       "curl -LsSf https://astral.sh/uv/install.sh | sh",
			AddCmd:            []string{"uv", "add"},
			AddDevCmd:         []string{"uv", "add", "--group", "dev"},
			RemoveCmd:         []string{"uv", "remove"},
			SyncCmd:           []string{"uv", "sync"},
			SyncDevCmd:        []string{"uv", "sync", "--group", "dev"},
			RunCmd:            []string{"uv", "run"},
			ListCmd:           []string{"uv", "pip", "list"},
			VersionCmd:        []string{"uv", "--version"},
			CleanFiles:        []string{"uv.lock", "__pypackages__"},
		},
		{
			Name:              "poetry",
			DetectionFiles:    []string{"poetry.lock"},
			DetectionPatterns: []string{"poetry"},
			InstallHint:       "curl -sSL https://install.python-poetry.org | python3 -",
			AddCmd:            []string{"poetry", "add"},
			AddDevCmd:         []string{"poetry", "add", "--group", "dev"},
			RemoveCmd:         []string{"poetry", "remove"},
			SyncCmd:           []string{"poetry", "install"},
			SyncDevCmd:        []string{"poetry", "install", "--with", "dev"},
			RunCmd:            []string{"poetry", "run"},
			ListCmd:           []string{"poetry", "show"},
			VersionCmd:        []string{"poetry", "--version"},
			CleanFiles:        []string{"poetry.lock", ".venv"},
		},
		{
			Name:           "rye",
			DetectionFiles: []string{"requirements.lock"},
			InstallHint:    "curl -sSf https://rye-up.com/get | bash",
			AddCmd:         []string{"rye", "add"},
			AddDevCmd:      []string{"rye", "add", "--dev"},
			RemoveCmd:      []string{"rye", "remove"},
			SyncCmd:        []string{"rye", "sync"},
			SyncDevCmd:     []string{"rye", "sync"}, // rye has no dev variant
			RunCmd:         []string{"rye", "run"},
			ListCmd:        []string{"rye", "list"},
			VersionCmd:     []string{"rye", "--version"},
			CleanFiles:     []string{"requirements.lock", ".venv"},
		},
		{
			Name:              "hatch",
			DetectionFiles:    []string{"hatch.lock"},
			DetectionPatterns: []string{"[tool.hatch"},
			InstallHint:       "pipx install hatch",
			AddCmd:            []string{"hatch", "add"},
			AddDevCmd:         []string{"hatch", "add", "--dev"},
			RemoveCmd:         []string{"hatch", "remove"},
			SyncCmd:           []string{"hatch", "dep", "sync"},
			SyncDevCmd:        []string{"hatch", "dep", "sync"},
			RunCmd:            []string{"hatch", "run"},
			ListCmd:           []string{"hatch", "dep", "show"},
			VersionCmd:        []string{"hatch", "--version"},
			CleanFiles:        []string{".venv"},
		},
	}
}
