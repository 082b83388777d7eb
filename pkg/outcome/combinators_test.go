package outcome

import (
	"math"
	"strconv"
	"testing"
)

func TestMap_Identity(t *testing.T) {
	t.Parallel()
	r := Succeed[int, string](5)
	id := func(v int) int { return v }

	if got := r.Map(id); got != r {
		t.Fatalf("expected map(id) to reproduce the result, got: %v", got)
	}
}

func TestMap_SkipsErrorAndEmpty(t *testing.T) {
	t.Parallel()
	called := false
	double := func(v int) int {
		called = true
		return v * 2
	}

	failed := Fail[int, string]("boom")
	if got := failed.Map(double); got != failed {
		t.Fatalf("expected the failure to pass through, got: %v", got)
	}
	empty := Empty[int, string]()
	if got := empty.Map(double); got != empty {
		t.Fatalf("expected the empty result to pass through, got: %v", got)
	}
	if called {
		t.Fatalf("f should not run outside the success state")
	}
}

func TestMap_TransformsSuccess(t *testing.T) {
	t.Parallel()
	r := Succeed[int, string](5).Map(func(v int) int { return v * 2 })
	if !r.IsSuccess() || r.MustValue() != 10 {
		t.Fatalf("expected success with 10, got: %v", r)
	}
}

func TestMapError_AllStates(t *testing.T) {
	t.Parallel()
	tag := func(e string) string { return "checked: " + e }

	r := Fail[int, string]("boom").MapError(tag)
	ev, _ := r.Failure()
	if !r.IsError() || ev != "checked: boom" {
		t.Fatalf("expected the transformed error, got: %v", r)
	}

	ok := Succeed[int, string](1)
	if got := ok.MapError(tag); got != ok {
		t.Fatalf("expected the success to pass through, got: %v", got)
	}
	empty := Empty[int, string]()
	if got := empty.MapError(tag); got != empty {
		t.Fatalf("expected the empty result to pass through, got: %v", got)
	}
}

func TestInspect_RunsInEveryState(t *testing.T) {
	t.Parallel()
	var seen []State
	tap := func(r Result[int, string]) { seen = append(seen, r.State()) }

	Succeed[int, string](1).Inspect(tap)
	Fail[int, string]("e").Inspect(tap)
	Empty[int, string]().Inspect(tap)

	if len(seen) != 3 || seen[0] != StateSuccess || seen[1] != StateError || seen[2] != StateEmpty {
		t.Fatalf("expected the tap to observe all three states, got: %v", seen)
	}
}

func TestInspect_IsReadOnly(t *testing.T) {
	t.Parallel()
	r := Succeed[int, string](5)

	got := r.Inspect(func(snapshot Result[int, string]) {
		snapshot.Take()
	})
	if got != r || !r.IsSuccess() {
		t.Fatalf("expected the original to survive the tap, got: %v", got)
	}
}

func TestAndThen_CompositionLaw(t *testing.T) {
	t.Parallel()
	f := func(v int) Result[string, string] {
		return Succeed[string, string](strconv.Itoa(v * 2))
	}

	chained := AndThen(Succeed[int, string](21), f)
	if chained != f(21) {
		t.Fatalf("expected andThen on success to equal f(v), got: %v", chained)
	}
}

func TestAndThen_RetypesErrorAndEmpty(t *testing.T) {
	t.Parallel()
	f := func(v int) Result[string, string] { return Succeed[string, string]("unused") }

	failed := AndThen(Fail[int, string]("boom"), f)
	ev, _ := failed.Failure()
	if !failed.IsError() || ev != "boom" {
		t.Fatalf("expected the original error under the new type, got: %v", failed)
	}

	empty := AndThen(Empty[int, string](), f)
	if !empty.IsEmpty() {
		t.Fatalf("expected empty to stay empty, got: %v", empty.State())
	}
}

func TestOrElse_CompositionLaw(t *testing.T) {
	t.Parallel()
	f := func(e string) Result[int, int] {
		return Fail[int, int](len(e))
	}

	recovered := OrElse(Fail[int, string]("boom"), f)
	if recovered != f("boom") {
		t.Fatalf("expected orElse on failure to equal f(e), got: %v", recovered)
	}
}

func TestOrElse_RetypesSuccessAndEmpty(t *testing.T) {
	t.Parallel()
	f := func(e string) Result[int, int] { return Succeed[int, int](0) }

	ok := OrElse(Succeed[int, string](7), f)
	if !ok.IsSuccess() || ok.MustValue() != 7 {
		t.Fatalf("expected the original value under the new error type, got: %v", ok)
	}

	empty := OrElse(Empty[int, string](), f)
	if !empty.IsEmpty() {
		t.Fatalf("expected empty to stay empty, got: %v", empty.State())
	}
}

func TestTransform_CallerControlsShape(t *testing.T) {
	t.Parallel()
	classify := func(r Result[int, string]) Result[string, int] {
		switch r.State() {
		case StateSuccess:
			return Succeed[string, int]("had value")
		case StateError:
			return Fail[string, int](1)
		default:
			return Fail[string, int](2)
		}
	}

	if got := Transform(Succeed[int, string](5), classify); got.MustValue() != "had value" {
		t.Fatalf("expected the success branch, got: %v", got)
	}
	if got := Transform(Fail[int, string]("e"), classify); !got.IsError() {
		t.Fatalf("expected the error branch, got: %v", got)
	}
	got := Transform(Empty[int, string](), classify)
	code, _ := got.Failure()
	if code != 2 {
		t.Fatalf("expected the empty result to reach f as well, got: %v", got)
	}
}

func TestOr_FirstSuccessWins(t *testing.T) {
	t.Parallel()
	fallback := Succeed[int, int](99)

	kept := Or(Succeed[int, string](5), fallback)
	if !kept.IsSuccess() || kept.MustValue() != 5 {
		t.Fatalf("expected the original success to win, got: %v", kept)
	}

	onError := Or(Fail[int, string]("boom"), fallback)
	if onError != fallback {
		t.Fatalf("expected the fallback on failure, got: %v", onError)
	}

	onEmpty := Or(Empty[int, string](), fallback)
	if onEmpty != fallback {
		t.Fatalf("expected the fallback on empty, got: %v", onEmpty)
	}
}

func div(a, b float64) Result[float64, string] {
	if b == 0 {
		return Fail[float64, string]("Division by zero error")
	}
	return Succeed[float64, string](a / b)
}

func TestDiv_Scenario(t *testing.T) {
	t.Parallel()

	v, err := div(10, 2).Value()
	if err != nil || v != 5 {
		t.Fatalf("expected 10/2 to yield 5, got: val=%v, err=%v", v, err)
	}

	msg, ok := div(5, 0).Failure()
	if !ok || msg != "Division by zero error" {
		t.Fatalf("expected the division error, got: msg=%q, ok=%v", msg, ok)
	}

	recovered := OrElse(div(5, 0), func(string) Result[float64, string] {
		return Succeed[float64, string](math.Inf(1))
	})
	if got := recovered.MustValue(); !math.IsInf(got, 1) {
		t.Fatalf("expected recovery to +Inf, got: %v", got)
	}

	halved := AndThen(div(10, 2), func(v float64) Result[float64, string] {
		return div(v, 2)
	})
	if got := halved.MustValue(); got != 2.5 {
		t.Fatalf("expected 2.5 after chaining, got: %v", got)
	}
}
