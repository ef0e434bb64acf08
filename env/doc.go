// Package env implements the environment ρ: a finite partial map from
// fixpoint-bound variables to the state set currently assigned to them.
// Both evaluators in package eval thread an Env through the recursive
// descent and update a variable's binding on each iteration of its
// binder's fixpoint loop. Naive binds the variable on every entry to its
// Mu or Nu binder; Improved binds every binder's variable once before
// the descent and rebinds it on entry only when resetting it. A binding
// is never restored to its pre-binder value on return:
// it is simply left at its final (converged) value until some other
// binder of the same name overwrites it. This is safe only because
// muparse rejects any formula where a binder would shadow a variable
// already bound by an enclosing binder, so no two live binders ever
// share a name.
package env
