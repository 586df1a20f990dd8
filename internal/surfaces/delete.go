// ABOUTME: Delete confirmation surface with Cancel/Delete buttons and no dismiss control
// ABOUTME: Either button closes the surface; Delete runs the callback first

package surfaces

import (
	"context"

	"github.com/mauromedda/cellar-go/pkg/overlay"
	"github.com/mauromedda/cellar-go/pkg/tui"
	"github.com/mauromedda/cellar-go/pkg/tui/component"
)

// DeleteConfirm asks before a destructive action.
type DeleteConfirm struct {
	base
	prompt  *component.Text
	buttons *component.Buttons
}

// OpenDeleteConfirm opens a confirmation for prompt. onDelete runs when the
// user confirms; onCancel, which may be nil, runs when they decline.
func OpenDeleteConfirm(ctx context.Context, prompt string, onDelete, onCancel func()) (overlay.SurfaceID, error) {
	ctrl, err := controller(ctx)
	if err != nil {
		return "", err
	}
	d := &DeleteConfirm{prompt: component.NewText(prompt)}
	d.ctrl = ctrl
	d.buttons = component.NewButtons(
		component.Button{Label: "Cancel", OnPress: func() {
			d.close()
			if onCancel != nil {
				onCancel()
			}
		}},
		component.Button{Label: "Delete", OnPress: func() {
			if onDelete != nil {
				onDelete()
			}
			d.close()
		}},
	)
	d.id = ctrl.Open(d, overlay.WithCloseButton(false), overlay.WithWidth(44))
	return d.id, nil
}

func (d *DeleteConfirm) Layout() overlay.SurfaceLayout {
	return overlay.Layout(overlay.Content(d.prompt), overlay.Footer(d.buttons))
}

func (d *DeleteConfirm) Render(out *tui.RenderBuffer, w int) {
	renderLayout(d.Layout(), out, w)
}

func (d *DeleteConfirm) HandleKey(name string) bool {
	return d.buttons.HandleKey(name)
}
