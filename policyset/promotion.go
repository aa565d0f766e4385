// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package policyset holds the concrete promotion and exception policy
// catalogs spec.md §1 names as external collaborators out of core scope.
// Native keeps a binary operator's result in the operand's own range (the
// "same-range result" half of spec.md §8's scenario table); Widening is
// only a name tag for callers that construct a result in a wider
// destination range themselves through safenum.New or safenum.FromSafe.
// Neither type computes bounds; the tight achievable [min,max] of an
// operator comes from safenum's AddInterval, MulInterval and friends.
package policyset

// Native is the promotion policy under which a same-range operator result
// either fits the shared operand range or faults — nothing widens
// automatically.
type Native struct{}

func (Native) Name() string { return "native" }

// Widening is the promotion policy tag identifying that a caller intends
// to construct the result in an explicitly wider destination range via
// safenum.New / safenum.FromSafe rather than via the same-range operator
// entry points.
type Widening struct{}

func (Widening) Name() string { return "widening" }
