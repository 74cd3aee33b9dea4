package http

import "github-bounty-agent/internal/criteria"

type getReq struct {
	Repo string `form:"repo"`
}

type getResp struct {
	Repo     string  `json:"repo"`
	Criteria *string `json:"criteria"`
}

type setReq struct {
	Repo     string `json:"repo"`
	Criteria string `json:"criteria"`
	Secret   string `json:"secret"`
}

func (r setReq) toInput() criteria.SetInput {
	return criteria.SetInput{
		Repo:     r.Repo,
		Criteria: r.Criteria,
		Secret:   r.Secret,
	}
}

func newGetResp(repo, value string) getResp {
	resp := getResp{Repo: repo}
	if value != "" {
		resp.Criteria = &value
	}
	return resp
}
