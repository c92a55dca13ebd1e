// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	add        key.Binding
	addVehicle key.Binding
	remove     key.Binding
	copy       key.Binding
	submit     key.Binding
	register   key.Binding
	reload     key.Binding
	logout     key.Binding
	version    key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	add:        key.NewBinding(key.WithKeys("a")),
	addVehicle: key.NewBinding(key.WithKeys("v")),
	remove:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	submit:     key.NewBinding(key.WithKeys("s")),
	register:   key.NewBinding(key.WithKeys("r")),
	reload:     key.NewBinding(key.WithKeys("ctrl+r")),
	logout:     key.NewBinding(key.WithKeys("L")),
	version:    key.NewBinding(key.WithKeys("ctrl+v")),
}
