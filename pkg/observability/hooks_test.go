package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	s := NoopStoreHooks{}
	s.OnAdd("el-0", "Box")
	s.OnUpdate([]string{"el-0"})
	s.OnRemove([]string{"el-0"})
	s.OnClear(3)
	s.OnSelectionChange(nil)

	g := NoopGestureHooks{}
	g.OnGestureStart("g1", "drag", []string{"el-0"})
	g.OnSnap("g1", "horizontal", 100)
	g.OnGestureEnd("g1", "drag", 4, false, time.Millisecond)

	p := NoopPersistenceHooks{}
	p.OnLoad(ctx, "file", "canvas", true, 120, nil)
	p.OnSave(ctx, "file", "canvas", 120, time.Millisecond, nil)
	p.OnRemove(ctx, "file", "canvas", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Store().(NoopStoreHooks); !ok {
		t.Error("Store() should return NoopStoreHooks by default")
	}
	if _, ok := Gesture().(NoopGestureHooks); !ok {
		t.Error("Gesture() should return NoopGestureHooks by default")
	}
	if _, ok := Persistence().(NoopPersistenceHooks); !ok {
		t.Error("Persistence() should return NoopPersistenceHooks by default")
	}

	customStore := &testStoreHooks{}
	SetStoreHooks(customStore)
	if Store() != customStore {
		t.Error("SetStoreHooks should set custom hooks")
	}

	customGesture := &testGestureHooks{}
	SetGestureHooks(customGesture)
	if Gesture() != customGesture {
		t.Error("SetGestureHooks should set custom hooks")
	}

	customPersistence := &testPersistenceHooks{}
	SetPersistenceHooks(customPersistence)
	if Persistence() != customPersistence {
		t.Error("SetPersistenceHooks should set custom hooks")
	}

	Reset()
	if _, ok := Gesture().(NoopGestureHooks); !ok {
		t.Error("Reset() should restore NoopGestureHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testStoreHooks{}
	SetStoreHooks(custom)
	SetStoreHooks(nil)
	if Store() != custom {
		t.Error("SetStoreHooks(nil) should keep the previous hooks")
	}
}

type testStoreHooks struct{ NoopStoreHooks }

type testGestureHooks struct{ NoopGestureHooks }

type testPersistenceHooks struct{ NoopPersistenceHooks }
