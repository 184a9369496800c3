package library

import "github.com/npillmayer/cnl/tactic"

// defineFrench registers tactics for proofs written in French. Output code
// is a sequence of LaTeX macros.
func defineFrench(r *tactic.Registry) {
	r.MustRegister("Comment", "{*|(|comment|)|}", format("(*%s.*)", "comment"))
	r.MustRegister("Spaces", "{*| |}", constant(""))
	r.MustRegister("start", "{START||-+reasoning}", constant(""))
	r.MustRegister("already_proven", "{reasoning|On a déjà montré que |property|.|}",
		format(`\alreadyProven{%s}`, "property"))
	r.MustRegister("to_be_proven", "{reasoning|Il faut montrer que |property|.|}",
		format(`\toBeProven{%s}`, "property"))
	r.MustRegister("let_in", `{reasoning|Soit |identifier| \in |inset|.|}`,
		format(`\letIn{%s}{%s}.`, "identifier", "inset"))
	r.MustRegister("let_in_pair",
		`{reasoning|Soient (|identifier1|, |identifier2|) \in |inset1| \times |inset2|.|}`,
		format(`\letInPair{%s}{%s}{%s}{%s}.`, "identifier1", "identifier2", "inset1", "inset2"))
	r.MustRegister("therefore", "{reasoning|On a donc |property|.|}",
		format(`\therefore{%s}`, "property"))
	r.MustRegister("introduce_named", "{reasoning|Supposons la propriété |identifier| que |property|.|}",
		format(`\introduceNamed{%s}{%s}.`, "identifier", "property"))
	r.MustRegister("introduce", "{reasoning|Supposons que |property|.|}",
		format(`\introduce{%s}.`, "property"))
	r.MustRegister("lets_prove", "{reasoning|Montrons que |property|.|}",
		format(`\letsProve{%s}.`, "property"))
	r.MustRegister("qed", "{reasoning|Ce qu'il fallait démontrer.|-+end}", constant(`\closeGoal{}`))
	r.MustRegister("case_analysis", "{reasoning|Procédons par analyse de cas.|>+case}",
		constant(`\caseBegin{}`))
	r.MustRegister("case_item", "{case|- Si |property|.|+reasoning}", format(`\caseItem{%s}`, "property"))
	r.MustRegister("case_item_end", "{case end||#-}", constant(`\caseItemEnd{}`))
	r.MustRegister("case_end", "{case||--+end}", constant(`\caseEnd{}`))
}
