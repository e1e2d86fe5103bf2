package ui

import (
	"log"
	"sync"

	"github.com/playwright-community/playwright-go"
)

// DialogPolicy answers native dialogs (confirm, alert) raised by a page.
// It accepts by default.
type DialogPolicy struct {
	mu       sync.Mutex
	dismiss  bool
	messages []string
}

// NewDialogPolicy returns a policy that accepts every dialog
func NewDialogPolicy() *DialogPolicy {
	return &DialogPolicy{}
}

// Install registers the policy on page. Call it once per page.
func (p *DialogPolicy) Install(page playwright.Page) {
	page.OnDialog(p.handle)
}

// AcceptDialogs makes the following dialogs be accepted
func (p *DialogPolicy) AcceptDialogs() {
	p.mu.Lock()
	p.dismiss = false
	p.mu.Unlock()
}

// DismissDialogs makes the following dialogs be dismissed
func (p *DialogPolicy) DismissDialogs() {
	p.mu.Lock()
	p.dismiss = true
	p.mu.Unlock()
}

// Messages returns the text of every dialog seen so far
func (p *DialogPolicy) Messages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.messages...)
}

func (p *DialogPolicy) handle(dialog playwright.Dialog) {
	p.mu.Lock()
	p.messages = append(p.messages, dialog.Message())
	dismiss := p.dismiss
	p.mu.Unlock()

	var err error
	if dismiss {
		err = dialog.Dismiss()
	} else {
		err = dialog.Accept()
	}
	if err != nil {
		log.Printf("Failed to answer %s dialog %q: %v", dialog.Type(), dialog.Message(), err)
	}
}
