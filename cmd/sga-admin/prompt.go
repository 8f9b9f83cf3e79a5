package main

import (
	"fmt"
	"strconv"
	"strings"
)

func (a *app) promptString(label string) string {
	fmt.Printf("%s: ", label)
	line, _ := a.reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func (a *app) promptInt(label string) int {
	n, _ := strconv.Atoi(a.promptString(label))
	return n
}

func (a *app) promptFloat(label string) float64 {
	f, _ := strconv.ParseFloat(a.promptString(label), 64)
	return f
}

// promptOptString reads a value for a PATCH payload; empty input means
// "leave unchanged".
func (a *app) promptOptString(label string) *string {
	v := a.promptString(label + " (vacío = sin cambio)")
	if v == "" {
		return nil
	}
	return &v
}

func (a *app) promptOptInt(label string) *int {
	v := a.promptString(label + " (vacío = sin cambio)")
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &n
}

func (a *app) promptOptFloat(label string) *float64 {
	v := a.promptString(label + " (vacío = sin cambio)")
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func (a *app) confirm(label string) bool {
	v := strings.ToLower(a.promptString(label + " [s/N]"))
	return v == "s" || v == "si" || v == "sí"
}
