package cli

import (
	"context"

	"github.com/nexuslabs/nexus-crm/internal/adapters/driven/storage/memory"
	"github.com/nexuslabs/nexus-crm/internal/core/domain"
	"github.com/nexuslabs/nexus-crm/internal/core/ports/driven"
	"github.com/nexuslabs/nexus-crm/internal/core/services"
)

// testPicker resolves to a fixed in-memory mirror.
type testPicker struct {
	path string
}

func (p *testPicker) SetPath(path string) { p.path = path }

func (p *testPicker) Pick(context.Context) (driven.PickResult, error) {
	if p.path == "" {
		return driven.PickResult{}, domain.ErrAborted
	}
	return driven.PickResult{Path: p.path}, nil
}

// setupTestServices wires the commands to memory-backed services and
// returns a cleanup that unwires them.
func setupTestServices() func() {
	engine := services.NewCRMService(context.Background(), memory.NewStateStore())

	picker := &testPicker{}
	mirror := services.NewMirrorService(engine, picker, func(path string) (driven.MirrorStore, error) {
		return memory.NewMirrorStore(path, nil), nil
	}, nil)

	SetServices(Services{
		CRM:      engine,
		Mirror:   mirror,
		Assist:   services.NewAssistService(engine, nil),
		Settings: services.NewSettingsService(memory.NewConfigStore()),
		Picker:   picker,
	})

	return func() {
		_ = mirror.Close()
		SetServices(Services{})
	}
}
