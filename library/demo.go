package library

import "github.com/npillmayer/cnl/tactic"

// defineDemo registers crude tactics which look like those of a proof
// assistant.
func defineDemo(r *tactic.Registry) {
	r.MustRegister("start", "{START||-+reasoning}", constant(""))
	r.MustRegister("admitted", "{reasoning||-+end}", constant("admitted."))
	r.MustRegister("destruction", "{reasoning|destruct |identifier|.|>+destruction}",
		format("destruct %s.\n", "identifier"))
	r.MustRegister("destruct_item", "{destruction|-|+reasoning}", constant(""))
	r.MustRegister("destruct_item_end", "{destruction end||#-}", constant(""))
	r.MustRegister("destruction_end", "{destruction||--+end}", constant(""))
	r.MustRegister("rewrite_left", "{reasoning|rewrite < |rewrite|.|}", format("rewrite <- %s.", "rewrite"))
	r.MustRegister("rewrite_right", "{reasoning|rewrite > |rewrite|.|}", format("rewrite -> %s.", "rewrite"))
	r.MustRegister("reflexivity", "{reasoning|reflexivity.|-+end}", constant("reflexivity."))
	r.MustRegister("apply", "{reasoning|apply |apply|.|}", format("apply %s.", "apply"))
	r.MustRegister("intros", "{reasoning|intros |identifier|.|}", format("intros %s.", "identifier"))
	r.MustRegister("simpl", "{reasoning|simpl.|}", constant("simpl."))
	r.MustRegister("left", "{reasoning|left.|}", constant("left."))
	r.MustRegister("right", "{reasoning|right.|}", constant("right."))
}
