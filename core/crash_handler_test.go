package core

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func stubExit(t *testing.T) <-chan int {
	t.Helper()
	codes := make(chan int, 1)
	exit = func(code int) { codes <- code }
	t.Cleanup(func() {
		exit = os.Exit
		SetCrashReset(nil)
	})
	return codes
}

func TestGo_PanicRunsResetAndExits(t *testing.T) {
	codes := stubExit(t)

	reset := make(chan struct{}, 1)
	SetCrashReset(func() { reset <- struct{}{} })

	Go(func() { panic("render failed") })

	select {
	case code := <-codes:
		assert.Equal(t, 1, code)
	case <-time.After(2 * time.Second):
		t.Fatal("crash handler did not exit")
	}
	select {
	case <-reset:
	default:
		t.Fatal("terminal reset hook not called")
	}
}

func TestGo_NoPanicNoExit(t *testing.T) {
	codes := stubExit(t)

	done := make(chan struct{})
	Go(func() { close(done) })
	<-done

	select {
	case <-codes:
		t.Fatal("exit called without a panic")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHandleCrash_NilIgnored(t *testing.T) {
	codes := stubExit(t)
	HandleCrash(nil)
	assert.Empty(t, codes)
}
