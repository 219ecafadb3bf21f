// Package ebiten hosts the entity manager inspector inside an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/chronos/ecs"
	"github.com/plus3/chronos/ecs/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend window. The imgui.ini file is disabled.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

// Overlay draws the inspector for manager on top of a game's own output.
type Overlay struct {
	Backend   *ImguiBackend
	Inspector *debugui.Inspector
	manager   *ecs.EntityManager
}

func NewOverlay(backend *ImguiBackend, manager *ecs.EntityManager) *Overlay {
	return &Overlay{
		Backend:   backend,
		Inspector: debugui.NewInspector(120),
		manager:   manager,
	}
}

// Update builds this frame's panels. Call it from ebiten.Game.Update.
func (o *Overlay) Update() {
	o.Backend.BeginFrame()
	o.Inspector.Render(o.manager)
	o.Backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.Backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.Backend.Layout(outsideWidth, outsideHeight)
}
