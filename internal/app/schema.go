package app

// Schema declares node types published by the service, for downstream templating.
const Schema = `type Github implements Node {
  repository: String
  owner: String
  name: String
  branch: String
  default_branch: String
  root: String
}

type Contributors {
  date: String
  login: String
  name: String
  avatarUrl: String
}

type GithubContributors implements Node {
  path: String
  repositoryPath: String
  href: String
  contributors: [Contributors]
}
`
