// Package objective evaluates the conditional log-likelihood of a
// log-linear model over derivation forests, together with its gradient.
//
// 🚀 What is it?
//
// Each training instance pairs a full forest (every derivation the model
// can produce for an input) with a reference forest (the sub-forest of
// derivations consistent with the gold output). Under edge weights
// p(e) = exp(f(e)·w) the instance loss is
//
//	NLL = log Z_full − log Z_ref
//
// and its gradient is the difference of expected feature vectors,
//
//	∇ = E_full[f] − E_ref[f]
//
// Both quantities come from one inside/outside pass per forest: Z is the
// root inside score and E[f] is insideoutside.Expect with the Vector
// module, under InverseRoot normalization so the result is already divided
// by Z.
//
// ⚙️ Concurrency
//
// Instances are evaluated on a bounded errgroup (WithWorkers). Each worker
// owns its InsideOutsides tables; forests are read-only and shared freely.
// Per-instance results are summed in corpus order, so the result does not
// depend on scheduling.
//
// Options: WithLogger (zap), WithMetrics (Prometheus), WithWorkers, WithL2.
package objective
