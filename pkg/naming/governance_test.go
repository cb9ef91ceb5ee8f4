//go:build governance

package naming_test

import (
	"go/types"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/leapstack-labs/dirlint"

// =============================================================================
// USAGE TEST - Exported naming API should have a consumer
// =============================================================================

// TestGovernance_NamingUsage reports exported pkg/naming identifiers that no
// other package in the module uses.
func TestGovernance_NamingUsage(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports | packages.NeedTypes |
			packages.NeedTypesInfo | packages.NeedDeps,
	}
	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	namingPath := modulePath + "/pkg/naming"
	defs := make(map[types.Object]string)
	for _, p := range pkgs {
		if p.PkgPath != namingPath {
			continue
		}
		scope := p.Types.Scope()
		for _, name := range scope.Names() {
			if obj := scope.Lookup(name); obj.Exported() {
				defs[obj] = name
			}
		}
	}
	if len(defs) == 0 {
		t.Fatal("Could not find pkg/naming")
	}

	used := make(map[string]map[string]bool)
	for _, p := range pkgs {
		if p.PkgPath == namingPath || p.TypesInfo == nil {
			continue
		}
		for _, obj := range p.TypesInfo.Uses {
			if name, ok := defs[obj]; ok {
				if used[name] == nil {
					used[name] = make(map[string]bool)
				}
				used[name][strings.TrimPrefix(p.PkgPath, modulePath+"/")] = true
			}
		}
	}

	for _, name := range defs {
		if len(used[name]) == 0 && !isUsageAllowlisted(name) {
			t.Logf("WARNING: Unused naming API: %s (consider unexporting)", name)
		}
	}

	// The entry points must reach the CLI.
	for _, name := range []string{"New", "Suggest", "Canonical"} {
		if len(used[name]) == 0 {
			t.Errorf("naming.%s is not used by any package", name)
		}
	}
}

// isUsageAllowlisted returns true for identifiers that exist for library users.
func isUsageAllowlisted(name string) bool {
	allowlist := map[string]bool{
		"CheckFunc": true, // part of RuleDef
		"RuleDef":   true, // rule table element
	}
	return allowlist[name]
}

// =============================================================================
// PURITY TEST - No network or process access anywhere in the module
// =============================================================================

// TestGovernance_NoNetworkImports ensures no package in the module imports
// networking or process execution packages directly.
func TestGovernance_NoNetworkImports(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedImports,
	}
	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("Failed to load packages: %v", err)
	}

	forbidden := []string{"net", "net/http", "os/exec"}
	for _, p := range pkgs {
		for _, imp := range forbidden {
			if _, ok := p.Imports[imp]; ok {
				t.Errorf("PURITY VIOLATION: Package '%s' imports '%s'.\n"+
					"   dirlint checks names as text and never talks to the network or spawns processes.",
					strings.TrimPrefix(p.PkgPath, modulePath+"/"), imp)
			}
		}
	}
}
