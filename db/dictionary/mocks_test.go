package dictionary

import "context"

type mockBackend struct {
	setupFunc    func(ctx context.Context) error
	containsFunc func(ctx context.Context, word string) (bool, error)
	createFunc   func(ctx context.Context, words ...string) error
}

func (m mockBackend) Setup(ctx context.Context) error {
	return m.setupFunc(ctx)
}

func (m mockBackend) Contains(ctx context.Context, word string) (bool, error) {
	return m.containsFunc(ctx, word)
}

func (m mockBackend) Create(ctx context.Context, words ...string) error {
	return m.createFunc(ctx, words...)
}
