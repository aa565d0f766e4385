package safenum

import "testing"

func TestChainAccumulatesWithoutError(t *testing.T) {
	var c Chain[int16, r0to100, nativeP, ignoreE]
	c.Result = MustNew[int16, r0to100, nativeP, ignoreE](10)
	c.Add(c.Result, MustNew[int16, r0to100, nativeP, ignoreE](5))
	c.Sub(c.Result, MustNew[int16, r0to100, nativeP, ignoreE](3))
	if c.Err != nil {
		t.Fatalf("unexpected error: %v", c.Err)
	}
	if c.Result.Get() != 12 {
		t.Errorf("Chain result = %d, want 12", c.Result.Get())
	}
}

func TestChainShortCircuitsOnFirstError(t *testing.T) {
	var c Chain[int16, r0to100, nativeP, ignoreE]
	c.Result = MustNew[int16, r0to100, nativeP, ignoreE](90)
	c.Add(c.Result, MustNew[int16, r0to100, nativeP, ignoreE](90))
	if c.Err == nil {
		t.Fatal("expected overflow error from the first Add")
	}
	before := c.Result
	c.Sub(c.Result, MustNew[int16, r0to100, nativeP, ignoreE](1))
	if c.Result != before {
		t.Error("Chain performed a second operation after the first failed")
	}
}
