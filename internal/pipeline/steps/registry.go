// Package steps defines the per-locale build steps, their ordering and
// which failures halt the build.
package steps

import (
	"fmt"
	"sort"
)

// Step names.
const (
	PrepareDir    = "prepare_dir"
	RenderHTML    = "render_html"
	PatchHTML     = "patch_html"
	ExportPDF     = "export_pdf"
	InjectToolbar = "inject_toolbar"
	WriteLanding  = "write_landing"
)

// Step categories.
const (
	CategoryHTML = "html"
	CategoryPDF  = "pdf"
	CategorySite = "site"
)

// StepDefinition defines metadata for a build step
type StepDefinition struct {
	Name         string
	Category     string
	Description  string
	Dependencies []string
	// Fatal steps abort the whole build; the others only warn.
	Fatal bool
}

// StepRegistry holds all step definitions
var StepRegistry = map[string]StepDefinition{
	PrepareDir: {
		Name:         PrepareDir,
		Category:     CategorySite,
		Description:  "Preparing output directory",
		Dependencies: []string{},
		Fatal:        true,
	},
	RenderHTML: {
		Name:         RenderHTML,
		Category:     CategoryHTML,
		Description:  "Rendering HTML",
		Dependencies: []string{PrepareDir},
		Fatal:        true,
	},
	PatchHTML: {
		Name:         PatchHTML,
		Category:     CategoryHTML,
		Description:  "Patching theme HTML",
		Dependencies: []string{RenderHTML},
		Fatal:        true,
	},
	ExportPDF: {
		Name:         ExportPDF,
		Category:     CategoryPDF,
		Description:  "Exporting PDF",
		Dependencies: []string{PatchHTML},
		Fatal:        false,
	},
	InjectToolbar: {
		Name:         InjectToolbar,
		Category:     CategoryHTML,
		Description:  "Injecting toolbar",
		Dependencies: []string{PatchHTML},
		Fatal:        true,
	},
	WriteLanding: {
		Name:         WriteLanding,
		Category:     CategorySite,
		Description:  "Writing landing page",
		Dependencies: []string{},
		Fatal:        true,
	},
}

// LocaleSteps is the order each locale runs through after its directory exists.
var LocaleSteps = []string{RenderHTML, PatchHTML, ExportPDF, InjectToolbar}

// DependencyError represents a dependency validation error
type DependencyError struct {
	Step                string
	MissingDependencies []string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("step %s: missing dependencies: %v", e.Step, e.MissingDependencies)
}

// Lookup returns the definition of a registered step.
func Lookup(stepName string) (StepDefinition, error) {
	def, ok := StepRegistry[stepName]
	if !ok {
		return StepDefinition{}, fmt.Errorf("unknown step: %s", stepName)
	}
	return def, nil
}

// ValidateDependencies checks that every dependency of stepName has completed.
func ValidateDependencies(completed map[string]bool, stepName string) error {
	def, err := Lookup(stepName)
	if err != nil {
		return err
	}

	var missing []string
	for _, dep := range def.Dependencies {
		if !completed[dep] {
			missing = append(missing, dep)
		}
	}

	if len(missing) > 0 {
		sort.Strings(missing)
		return &DependencyError{Step: stepName, MissingDependencies: missing}
	}
	return nil
}
