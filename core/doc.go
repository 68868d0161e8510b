/* Copyright 2024 The whens Authors
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package core provides the core gear for ordered predicate
// dispatch: a switch-like construct whose cases are arbitrary
// predicates over a single value, considered strictly in the order
// they were registered.
//
// The primary types are Switch and Case.  A Switch holds the
// dispatch value, an ordered sequence of Cases, and an optional
// default Action.  Switch.Evaluate() runs each Case's predicate in
// registration order and executes the action of the first predicate
// that holds.  Once a predicate holds, no later predicate is even
// evaluated.  If no predicate holds, the default action (if any)
// runs; otherwise Evaluate() does nothing at all, which is a normal,
// non-error outcome.
//
// A Switch is meant to be built fresh for each dispatch occasion,
// evaluated once, and discarded.
//
// Predicates and actions are ordinary closures.  Whatever state they
// capture is the caller's business: the Switch neither owns nor
// protects any shared state, and a Switch is not safe for concurrent
// Evaluate() calls that share captured state.  Callers who want that
// need their own synchronization.
//
// Evaluate() performs no local error recovery.  The first error
// returned by a predicate or an action aborts the scan at that
// point.  Cases after the failing one are not considered, and the
// default action is not run.
//
// A Table is a declarative rendition of the same construct: its
// cases carry predicate and action source code that an Interpreter
// (see package interpreters) compiles.  Table.Evaluate() translates
// the table into exactly the Switch-building calls described above
// and nothing more.
package core
