package refs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/headless/pkg/dom"
	htesting "github.com/go-drift/headless/pkg/testing"
)

func TestCompose_ZeroConsumersPanics(t *testing.T) {
	assert.Panics(t, func() { Compose() })
}

func TestTryCompose_ZeroConsumersReturnsError(t *testing.T) {
	c, err := TryCompose()
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrNoConsumers)

	c, err = TryCompose(func(dom.Element) {})
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestCompose_ForwardsInRegistrationOrder(t *testing.T) {
	doc := htesting.NewDocument()
	el := doc.Root().Append(doc.NewNode("target"))

	var order []string
	c := Compose(
		func(dom.Element) { order = append(order, "c1") },
		func(dom.Element) { order = append(order, "c2") },
	)
	c.Set(el)

	assert.Equal(t, []string{"c1", "c2"}, order)
}

func TestCompose_AllConsumersReceiveHandle(t *testing.T) {
	doc := htesting.NewDocument()
	el := doc.Root().Append(doc.NewNode("target"))

	var got1, got2 dom.Element
	c := Compose(
		func(e dom.Element) { got1 = e },
		func(e dom.Element) { got2 = e },
	)
	c.Set(el)

	require.Equal(t, dom.Element(el), got1)
	require.Equal(t, dom.Element(el), got2)
}

func TestAdd_BackfillsKnownHandle(t *testing.T) {
	doc := htesting.NewDocument()
	el := doc.Root().Append(doc.NewNode("target"))

	c := Compose(func(dom.Element) {})
	c.Set(el)

	var got dom.Element
	c.Add(func(e dom.Element) { got = e })

	assert.Equal(t, dom.Element(el), got, "late consumer must be backfilled immediately")
}

func TestAdd_NoBackfillBeforeHandleKnown(t *testing.T) {
	c := Compose(func(dom.Element) {})

	called := false
	c.Add(func(dom.Element) { called = true })

	assert.False(t, called)
}

func TestSet_NilClearsForEveryConsumer(t *testing.T) {
	doc := htesting.NewDocument()
	el := doc.Root().Append(doc.NewNode("target"))

	calls := 0
	var last dom.Element
	c := Compose(func(e dom.Element) {
		calls++
		last = e
	})
	c.Set(el)
	c.Set(nil)

	assert.Equal(t, 2, calls)
	assert.Nil(t, last)
}

func TestAdd_NilConsumerIgnored(t *testing.T) {
	doc := htesting.NewDocument()
	el := doc.Root().Append(doc.NewNode("target"))

	c := Compose(func(dom.Element) {})
	c.Add(nil)

	assert.NotPanics(t, func() { c.Set(el) })
}
