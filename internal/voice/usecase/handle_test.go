package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-shopping-list/internal/model"
	"voice-shopping-list/internal/nlu"
	"voice-shopping-list/internal/shoppinglist"
	"voice-shopping-list/internal/voice"
)

type testLogger struct{}

func (testLogger) Debug(ctx context.Context, args ...any)                  {}
func (testLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (testLogger) Info(ctx context.Context, args ...any)                   {}
func (testLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (testLogger) Warn(ctx context.Context, args ...any)                   {}
func (testLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (testLogger) Error(ctx context.Context, args ...any)                  {}
func (testLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (testLogger) DPanic(ctx context.Context, args ...any)                 {}
func (testLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (testLogger) Panic(ctx context.Context, args ...any)                  {}
func (testLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (testLogger) Fatal(ctx context.Context, args ...any)                  {}
func (testLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// fakeLists is an in-memory shoppinglist.UseCase with the same
// invariants as the real one: name+date conflict, soft delete, domain
// ordering of listings.
type fakeLists struct {
	lists []model.ShoppingList
	items map[string][]model.ListItem
	seq   int
	clock time.Time
}

func newFakeLists(clock time.Time) *fakeLists {
	return &fakeLists{items: map[string][]model.ListItem{}, clock: clock}
}

func (f *fakeLists) nextID() string {
	f.seq++
	return fmt.Sprintf("id-%d", f.seq)
}

// tick advances the fake clock so successive CreatedAt values differ.
func (f *fakeLists) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (f *fakeLists) CreateList(ctx context.Context, input shoppinglist.CreateListInput) (model.ShoppingList, error) {
	date := day(input.TargetDate)
	for _, l := range f.lists {
		if l.Status == model.ListStatusActive && strings.EqualFold(l.Name, input.Name) && l.TargetDate.Equal(date) {
			return model.ShoppingList{}, shoppinglist.ErrListConflict
		}
	}
	list := model.ShoppingList{
		ID:         f.nextID(),
		Name:       input.Name,
		TargetDate: date,
		Status:     model.ListStatusActive,
		CreatedAt:  f.tick(),
	}
	f.lists = append(f.lists, list)
	return list, nil
}

func (f *fakeLists) GetList(ctx context.Context, id string) (model.ShoppingList, error) {
	for _, l := range f.lists {
		if l.ID == id {
			return l, nil
		}
	}
	return model.ShoppingList{}, shoppinglist.ErrListNotFound
}

func (f *fakeLists) ListForDate(ctx context.Context, date time.Time) ([]model.ShoppingList, error) {
	var out []model.ShoppingList
	for _, l := range f.lists {
		if l.Status == model.ListStatusActive && l.TargetDate.Equal(day(date)) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *fakeLists) ListActive(ctx context.Context) ([]model.ShoppingList, error) {
	var out []model.ShoppingList
	for _, l := range f.lists {
		if l.Status == model.ListStatusActive {
			out = append(out, l)
		}
	}
	return out, nil
}

func (f *fakeLists) DeleteList(ctx context.Context, id string) error {
	for i, l := range f.lists {
		if l.ID != id {
			continue
		}
		if l.Status == model.ListStatusDeleted {
			return shoppinglist.ErrListAlreadyDeleted
		}
		f.lists[i].Status = model.ListStatusDeleted
		return nil
	}
	return shoppinglist.ErrListNotFound
}

func (f *fakeLists) AddItem(ctx context.Context, input shoppinglist.AddItemInput) (model.ListItem, error) {
	list, err := f.GetList(ctx, input.ListID)
	if err != nil {
		return model.ListItem{}, err
	}
	if list.Status == model.ListStatusDeleted {
		return model.ListItem{}, shoppinglist.ErrListDeleted
	}
	item := model.ListItem{
		ID:          f.nextID(),
		ListID:      input.ListID,
		ProductName: input.ProductName,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		Status:      model.ItemStatusPending,
		CreatedAt:   f.tick(),
	}
	f.items[input.ListID] = append(f.items[input.ListID], item)
	return item, nil
}

func (f *fakeLists) GetItem(ctx context.Context, id string) (model.ListItem, error) {
	for _, items := range f.items {
		for _, item := range items {
			if item.ID == id {
				return item, nil
			}
		}
	}
	return model.ListItem{}, shoppinglist.ErrItemNotFound
}

func (f *fakeLists) ListItems(ctx context.Context, listID string) ([]model.ListItem, error) {
	items := append([]model.ListItem(nil), f.items[listID]...)
	sort.Slice(items, func(i, j int) bool {
		if items[i].Status != items[j].Status {
			return items[i].Status == model.ItemStatusPending
		}
		return items[i].ProductName < items[j].ProductName
	})
	return items, nil
}

func (f *fakeLists) SetItemStatus(ctx context.Context, input shoppinglist.SetItemStatusInput) error {
	for listID, items := range f.items {
		for i, item := range items {
			if item.ID == input.ItemID {
				f.items[listID][i].Status = input.Status
				return nil
			}
		}
	}
	return shoppinglist.ErrItemNotFound
}

func (f *fakeLists) DeleteItem(ctx context.Context, id string) error {
	for listID, items := range f.items {
		for i, item := range items {
			if item.ID == id {
				f.items[listID] = append(items[:i], items[i+1:]...)
				return nil
			}
		}
	}
	return shoppinglist.ErrItemNotFound
}

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func newTestUseCase() (*implUseCase, *fakeLists) {
	fake := newFakeLists(testNow)
	uc := New(testLogger{}, fake)
	uc.now = func() time.Time { return testNow }
	return uc, fake
}

// say runs a raw command through the free-text grammar and the engine,
// exactly as the HTTP layer would.
func say(uc *implUseCase, raw string) voice.DialogueResponse {
	return uc.Handle(context.Background(), nlu.Parse(nlu.Normalize(raw)))
}

func TestHandleStaticIntents(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	launch := uc.Handle(ctx, nlu.Command{Intent: nlu.IntentLaunch})
	assert.Contains(t, launch.SpeechText, "Bienvenido a Lista de Compras")
	assert.NotEmpty(t, launch.RepromptText)
	assert.False(t, launch.ShouldEndSession)

	help := uc.Handle(ctx, nlu.Command{Intent: nlu.IntentHelp})
	assert.Contains(t, help.SpeechText, "crea una lista llamada supermercado")
	assert.False(t, help.ShouldEndSession)

	stop := uc.Handle(ctx, nlu.Command{Intent: nlu.IntentStop})
	assert.Equal(t, voice.SpeechGoodbye, stop.SpeechText)
	assert.True(t, stop.ShouldEndSession)
	assert.Empty(t, stop.RepromptText)

	unknown := uc.Handle(ctx, nlu.Command{Intent: nlu.IntentUnknown})
	assert.Equal(t, voice.SpeechUnknown, unknown.SpeechText)
	assert.False(t, unknown.ShouldEndSession)
}

func TestCreateListAndConflict(t *testing.T) {
	uc, fake := newTestUseCase()

	resp := say(uc, "Alexa, crea una lista llamada Super")
	assert.Equal(t, "Perfecto, he creado la lista super. ¿Deseas agregar productos ahora?", resp.SpeechText)
	assert.False(t, resp.ShouldEndSession)
	require.Len(t, fake.lists, 1)

	resp = say(uc, "crea una lista llamada Super")
	assert.Equal(t, "Ya existe una lista con el nombre 'super' para la fecha 01/09/2026", resp.SpeechText)
	assert.False(t, resp.ShouldEndSession)
	assert.Empty(t, resp.RepromptText)
	assert.Len(t, fake.lists, 1, "conflict must not create a second list")
}

func TestImplicitAddTargetsLatestList(t *testing.T) {
	uc, fake := newTestUseCase()

	say(uc, "crea una lista llamada antigua")
	say(uc, "crea una lista llamada reciente")

	resp := say(uc, "agrega 2 manzanas")
	assert.Contains(t, resp.SpeechText, "a tu lista reciente")
	assert.Contains(t, resp.SpeechText, "2 manzanas")

	latest := fake.lists[1]
	require.Equal(t, "reciente", latest.Name)
	assert.Len(t, fake.items[latest.ID], 1)
	assert.Empty(t, fake.items[fake.lists[0].ID])
}

func TestAddProductWithoutList(t *testing.T) {
	uc, _ := newTestUseCase()

	resp := say(uc, "agrega leche")
	assert.Equal(t, voice.SpeechNoActiveList, resp.SpeechText)
	assert.Equal(t, voice.RepromptNoActiveList, resp.RepromptText)
	assert.False(t, resp.ShouldEndSession)
}

func TestShoppingFlow(t *testing.T) {
	uc, fake := newTestUseCase()

	say(uc, "crea una lista llamada mercado")

	resp := say(uc, "agrega 2 litros de leche")
	assert.Equal(t, "He agregado 2 litros de leche a tu lista mercado. ¿Algo más?", resp.SpeechText)

	resp = say(uc, "ya compré la leche")
	assert.Equal(t, "Perfecto, he marcado leche como comprado en tu lista mercado.", resp.SpeechText)

	items := fake.items[fake.lists[0].ID]
	require.Len(t, items, 1)
	assert.Equal(t, model.ItemStatusPurchased, items[0].Status)
}

func TestListProducts(t *testing.T) {
	uc, _ := newTestUseCase()

	resp := say(uc, "qué hay en mi lista")
	assert.Equal(t, voice.SpeechNoActiveListsToday, resp.SpeechText)

	say(uc, "crea una lista llamada mercado")
	resp = say(uc, "qué hay en mi lista")
	assert.Equal(t, "Tu lista mercado está vacía. ¿Quieres agregar productos?", resp.SpeechText)

	say(uc, "agrega 3 kilos de tomate")
	say(uc, "agrega pan")
	say(uc, "ya compré el pan")

	resp = say(uc, "qué hay en mi lista")
	assert.Contains(t, resp.SpeechText, "En tu lista mercado tienes: ")
	assert.Contains(t, resp.SpeechText, "Pendientes: 3 kilos de tomate. ")
	assert.Contains(t, resp.SpeechText, "Ya compraste 1 producto.")
	assert.False(t, resp.ShouldEndSession)
}

func TestListLists(t *testing.T) {
	uc, _ := newTestUseCase()

	resp := say(uc, "qué listas tengo")
	assert.Equal(t, voice.SpeechNoListsToday, resp.SpeechText)

	say(uc, "crea una lista llamada farmacia")
	resp = say(uc, "qué listas tengo")
	assert.Equal(t, "Tienes una lista para hoy: farmacia. ¿Quieres ver los productos de alguna lista?", resp.SpeechText)

	say(uc, "crea una lista llamada mercado")
	resp = say(uc, "qué listas tengo")
	assert.Equal(t, "Tienes 2 listas para hoy: farmacia, mercado. ¿Quieres ver los productos de alguna lista?", resp.SpeechText)
}

func TestDeleteList(t *testing.T) {
	uc, fake := newTestUseCase()

	resp := say(uc, "elimina la lista mercado")
	assert.Equal(t, "No encontré ninguna lista llamada mercado.", resp.SpeechText)

	say(uc, "crea una lista llamada mercado")
	resp = say(uc, "elimina la lista mercado")
	assert.Equal(t, "He eliminado la lista mercado.", resp.SpeechText)
	assert.Equal(t, model.ListStatusDeleted, fake.lists[0].Status)
}

func TestDeleteProduct(t *testing.T) {
	uc, fake := newTestUseCase()

	say(uc, "crea una lista llamada mercado")
	say(uc, "agrega leche")

	resp := say(uc, "elimina el pan")
	assert.Equal(t, "No encontré pan en tus listas.", resp.SpeechText)

	resp = say(uc, "elimina la leche")
	assert.Equal(t, "He eliminado leche de tu lista mercado.", resp.SpeechText)
	assert.Empty(t, fake.items[fake.lists[0].ID])
}

// A response that asks a follow-up question must leave the session open.
func TestRepromptImpliesSessionOpen(t *testing.T) {
	uc, _ := newTestUseCase()

	commands := []string{
		"abre lista de compras",
		"crea una lista llamada mercado",
		"agrega leche",
		"qué listas tengo",
		"ayuda",
		"cancelar",
		"no tengo idea",
	}
	for _, raw := range commands {
		resp := say(uc, raw)
		if resp.RepromptText != "" {
			assert.False(t, resp.ShouldEndSession, "command %q", raw)
		}
	}
}
